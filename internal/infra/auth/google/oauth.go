package google

import (
	"context"
	"log/slog"
	"time"

	"identity/config"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const providerName = "google"

var defaultScopes = []string{"openid", "profile", "email"}

// IDTokenValidator validates a raw ID token for audience. idtoken.Validate in production.
type IDTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// OAuthService handles the Google authorization code flow.
type OAuthService struct {
	oauthConfig *oauth2.Config
	validate    IDTokenValidator
	logger      *slog.Logger
}

// OAuthParams holds dependencies for the Google OAuth service, injected by Fx.
type OAuthParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(params OAuthParams) (service.OAuthService, error) {
	cfg := params.Config.GoogleOAuth
	if cfg == nil || cfg.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId must be provided")
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return newOAuthService(&oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       scopes,
	}, idtoken.Validate, params.Logger), nil
}

func newOAuthService(oauthConfig *oauth2.Config, validate IDTokenValidator, logger *slog.Logger) *OAuthService {
	return &OAuthService{
		oauthConfig: oauthConfig,
		validate:    validate,
		logger:      logger,
	}
}

// NewVerifier returns a fresh PKCE code verifier.
func (s *OAuthService) NewVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthCodeURL builds the consent screen URL with state and an S256 PKCE challenge.
func (s *OAuthService) AuthCodeURL(state, verifier string) string {
	return s.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)
}

// Exchange trades the authorization code for tokens and validates the returned ID token.
func (s *OAuthService) Exchange(ctx context.Context, code, verifier string) (*entity.FederatedAssertion, error) {
	if code == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	token, err := s.oauthConfig.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		s.logger.WarnContext(ctx, "Google token exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage(err.Error())
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("provider did not return an id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	assertion, err := assertionFromPayload(payload)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	assertion.Tokens = &entity.FederationTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}

	s.logger.InfoContext(ctx, "Google ID token verified",
		slog.Bool("email_verified", assertion.EmailVerified),
		slog.Time("expiry", time.Unix(payload.Expires, 0)),
	)

	return assertion, nil
}

// GetProvider returns the OAuth provider name
func (s *OAuthService) GetProvider() string {
	return providerName
}
