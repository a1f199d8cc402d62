package service

import (
	"context"

	"identity/internal/domain/entity"
)

// OAuthService is the provider half of the OAuth Federation Adapter.
type OAuthService interface {
	// NewVerifier returns a fresh PKCE code verifier.
	NewVerifier() string

	// AuthCodeURL returns the consent screen URL carrying state and the PKCE
	// challenge derived from verifier.
	AuthCodeURL(state, verifier string) string

	// Exchange trades an authorization code for a verified identity assertion.
	Exchange(ctx context.Context, code, verifier string) (*entity.FederatedAssertion, error)

	// GetProvider returns the provider name used in logs and metrics.
	GetProvider() string
}
