package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/metrics"
	"identity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Token failure reasons recorded in metrics.
const (
	reasonExpired = "expired"
	reasonInvalid = "invalid"
	reasonRevoked = "revoked"
	reasonUnknown = "unknown_identity"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityRepo repository.IdentityRepository
	tokenService service.TokenService
	denylist     service.SessionDenylist
	metrics      *metrics.AuthMetrics
	events       service.EventPublisher
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	TokenService service.TokenService
	Denylist     service.SessionDenylist
	Metrics      *metrics.AuthMetrics   `optional:"true"`
	Events       service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identityRepo: params.IdentityRepo,
		tokenService: params.TokenService,
		denylist:     params.Denylist,
		metrics:      params.Metrics,
		events:       params.Events,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the token and resolves the live identity. Fields
// embedded in the token are never trusted over the stored record.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*usecase.AuthenticatedSession, error) {
	verified, err := srv.tokenService.VerifySession(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenExpired) {
			srv.metrics.TokenFailure(reasonExpired)
		} else {
			srv.metrics.TokenFailure(reasonInvalid)
		}

		return nil, err
	}

	revoked, err := srv.denylist.IsRevoked(ctx, verified.JTI)
	if err != nil {
		srv.log(ctx).Error("Failed to check session revocation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check session revocation")
	}
	if revoked {
		srv.metrics.TokenFailure(reasonRevoked)

		return nil, domainerrors.ErrTokenInvalid.WithDetails("session revoked")
	}

	identity, err := srv.identityRepo.FindByID(ctx, verified.Snapshot.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			srv.metrics.TokenFailure(reasonUnknown)

			return nil, domainerrors.ErrTokenInvalid.WithDetails("identity no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve session identity")
	}

	return &usecase.AuthenticatedSession{
		Identity:  identity,
		JTI:       verified.JTI,
		ExpiresAt: verified.ExpiresAt,
	}, nil
}

// Logout denies the token's jti until the token would have expired.
func (srv *sessionService) Logout(ctx context.Context, token string) error {
	srv.metrics.Logout()

	if token == "" {
		return nil
	}

	verified, err := srv.tokenService.VerifySession(token)
	if err != nil {
		srv.log(ctx).Debug("Logout with unverifiable token, nothing to revoke")

		return nil
	}

	if err := srv.denylist.Revoke(ctx, verified.JTI, verified.ExpiresAt); err != nil {
		srv.log(ctx).Error("Failed to revoke session", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Info("Session revoked", slog.String("identityID", verified.Snapshot.ID.String()))
	publishEvent(ctx, srv.events, srv.log(ctx), service.NewIdentityEvent(service.EventSessionRevoked, verified.Snapshot.ID))

	return nil
}
