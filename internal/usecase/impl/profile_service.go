package impl

import (
	"context"
	"log/slog"

	"identity/config"
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/metrics"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	tokenService service.TokenService
	validator    service.CredentialValidator
	gate         *profileGate
	metrics      *metrics.AuthMetrics
	events       service.EventPublisher
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	TokenService service.TokenService
	Validator    service.CredentialValidator
	Metrics      *metrics.AuthMetrics   `optional:"true"`
	Events       service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		tokenService: params.TokenService,
		validator:    params.Validator,
		gate:         newProfileGate(params.TokenService, params.Config),
		metrics:      params.Metrics,
		events:       params.Events,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPendingProfile returns the identity if its profile is still incomplete.
func (srv *profileService) GetPendingProfile(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity.ProfileState() == entity.ProfileComplete {
		return nil, domainerrors.ErrProfileAlreadyComplete
	}

	return identity, nil
}

// CompleteProfile sets the gender of an incomplete identity and issues its session.
// An unknown identity is reported before the completion proof is checked.
// On any failure the stored identity is left unchanged.
func (srv *profileService) CompleteProfile(ctx context.Context, input *usecase.CompleteProfileInput) (*usecase.AuthResult, error) {
	if _, err := srv.identityRepo.FindByID(ctx, input.IdentityID); err != nil {
		srv.metrics.ProfileCompletion(metrics.OutcomeFailure)
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to find identity for profile completion",
			slog.String("identityID", input.IdentityID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to find identity")
	}

	boundID, err := srv.tokenService.VerifyProfileCompletion(input.PendingToken)
	if err != nil {
		srv.metrics.ProfileCompletion(metrics.OutcomeFailure)

		return nil, err
	}
	if boundID != input.IdentityID {
		srv.metrics.ProfileCompletion(metrics.OutcomeFailure)
		srv.log(ctx).Warn("Profile completion token bound to another identity",
			slog.String("identityID", input.IdentityID.String()),
		)

		return nil, domainerrors.ErrTokenInvalid.WithDetails("profile completion token does not match identity")
	}

	gender, err := srv.validator.ValidateGender(input.Gender)
	if err != nil {
		srv.metrics.ProfileCompletion(metrics.OutcomeFailure)

		return nil, err
	}

	var completed *entity.Identity
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.NewIdentityRepository()

		identity, err := identityRepo.FindByID(ctx, input.IdentityID)
		if err != nil {
			return err
		}
		if identity.ProfileState() == entity.ProfileComplete {
			return domainerrors.ErrProfileAlreadyComplete
		}

		identity.Gender = gender
		if err := identityRepo.Save(ctx, identity); err != nil {
			return err
		}
		completed = identity

		return nil
	})
	if err != nil {
		srv.metrics.ProfileCompletion(metrics.OutcomeFailure)
		if errors.Is(err, domainerrors.ErrIdentityNotFound) || errors.Is(err, domainerrors.ErrProfileAlreadyComplete) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to complete profile", slog.String("identityID", input.IdentityID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to complete profile")
	}

	result, err := srv.gate.apply(completed)
	if err != nil {
		return nil, err
	}

	srv.metrics.ProfileCompletion(metrics.OutcomeSuccess)
	srv.log(ctx).Info("Profile completed", slog.String("identityID", completed.ID.String()))
	publishEvent(ctx, srv.events, srv.log(ctx), service.NewIdentityEvent(service.EventProfileCompleted, completed.ID))

	return result, nil
}
