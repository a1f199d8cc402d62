package usecase

import "context"

// BeginFederationOutput carries the consent URL and the values the caller
// must keep until the provider redirects back.
type BeginFederationOutput struct {
	AuthURL  string
	State    string
	Verifier string
}

// FederationCallbackInput is the provider redirect together with the values
// kept from BeginGoogleLogin.
type FederationCallbackInput struct {
	Code          string
	State         string
	ExpectedState string
	Verifier      string
}

// FederationUsecase defines the OAuth login flow.
type FederationUsecase interface {
	BeginGoogleLogin(ctx context.Context) (*BeginFederationOutput, error)
	GoogleCallback(ctx context.Context, input *FederationCallbackInput) (*AuthResult, error)
}
