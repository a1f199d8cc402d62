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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	validator    service.CredentialValidator
	gate         *profileGate
	metrics      *metrics.AuthMetrics
	events       service.EventPublisher
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    service.CredentialValidator
	Metrics      *metrics.AuthMetrics   `optional:"true"`
	Events       service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		validator:    params.Validator,
		gate:         newProfileGate(params.TokenService, params.Config),
		metrics:      params.Metrics,
		events:       params.Events,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials and creates a local identity. Email
// uniqueness is enforced by the store.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	err := srv.validator.ValidateRegistration(service.Credentials{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
	})
	if err != nil {
		srv.metrics.Registration(metrics.OutcomeFailure)

		return nil, err
	}

	identity := entity.NewLocalIdentity(input.Email, input.Password)
	identity.FirstName = input.FirstName
	identity.LastName = input.LastName
	identity.Gender = entity.Gender(input.Gender)

	err = hashPendingPassword(ctx, srv.hasher, identity)
	if err == nil {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewIdentityRepository().Create(ctx, identity)
		})
	}
	if err != nil {
		srv.metrics.Registration(metrics.OutcomeFailure)
		if isClientError(err) {
			srv.log(ctx).Info("Registration rejected", slog.Any("reason", err))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create identity", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register identity")
	}

	srv.metrics.Registration(metrics.OutcomeSuccess)
	srv.log(ctx).Info("Identity registered", slog.String("identityID", identity.ID.String()))
	publishEvent(ctx, srv.events, srv.log(ctx), service.NewIdentityEvent(service.EventIdentityRegistered, identity.ID))

	return &usecase.RegisterOutput{Identity: identity}, nil
}

// Login checks a local password and applies the profile completion gate.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	identity, err := srv.identityRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		srv.metrics.Login(metrics.OutcomeFailure)
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	if !identity.HasUsablePassword() || !srv.hasher.Check(ctx, input.Password, identity.PasswordHash) {
		srv.metrics.Login(metrics.OutcomeFailure)
		srv.log(ctx).Info("Login rejected", slog.String("identityID", identity.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	result, err := srv.gate.apply(identity)
	if err != nil {
		srv.metrics.Login(metrics.OutcomeFailure)

		return nil, err
	}

	if result.Complete() {
		srv.metrics.Login(metrics.OutcomeSuccess)
	} else {
		srv.metrics.Login(metrics.OutcomeIncomplete)
	}
	srv.log(ctx).Info("Login succeeded",
		slog.String("identityID", identity.ID.String()),
		slog.String("profileState", string(result.State)),
	)

	return result, nil
}

// ChangePassword replaces the password. The current password is required when
// one is already usable; a federation-only identity sets its first password
// and becomes linked. Both bcrypt steps run before the write transaction, which
// fails if the stored hash moved in between.
func (srv *identityService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if err := srv.validator.ValidatePassword(input.NewPassword); err != nil {
		return err
	}

	identity, err := srv.identityRepo.FindByID(ctx, input.IdentityID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to find identity")
	}
	if identity.HasUsablePassword() && !srv.hasher.Check(ctx, input.CurrentPassword, identity.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}
	checkedHash := identity.PasswordHash

	newHash, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		if isClientError(err) {
			return err
		}
		srv.log(ctx).Error("Failed to hash new password", slog.String("identityID", input.IdentityID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.NewIdentityRepository()

		current, err := identityRepo.FindByID(ctx, input.IdentityID)
		if err != nil {
			return err
		}
		if current.PasswordHash != checkedHash {
			return domainerrors.ErrInvalidCredentials.WithDetails("password changed concurrently")
		}
		current.SetPasswordHash(newHash)

		return identityRepo.Save(ctx, current)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) || errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return err
		}
		srv.log(ctx).Error("Failed to change password", slog.String("identityID", input.IdentityID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("identityID", input.IdentityID.String()))
	publishEvent(ctx, srv.events, srv.log(ctx), service.NewIdentityEvent(service.EventPasswordChanged, input.IdentityID))

	return nil
}

// GetIdentity returns the live identity record.
func (srv *identityService) GetIdentity(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity")
	}

	return identity, nil
}
