package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"log/slog"

	"identity/config"
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/metrics"
	"identity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	stateBytes       = 32
	placeholderBytes = 16
)

// federationService implements the FederationUsecase interface.
type federationService struct {
	txManager    repository.TransactionManager
	oauthService service.OAuthService
	hasher       service.PasswordHasher
	gate         *profileGate
	metrics      *metrics.AuthMetrics
	events       service.EventPublisher
	logger       *slog.Logger
	randomRead   func([]byte) (int, error)
}

// FederationServiceParams holds dependencies for FederationService, injected by Fx.
type FederationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OAuthService service.OAuthService
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.AuthMetrics   `optional:"true"`
	Events       service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFederationService is the constructor for federationService.
func NewFederationService(params FederationServiceParams) usecase.FederationUsecase {
	return &federationService{
		txManager:    params.TxManager,
		oauthService: params.OAuthService,
		hasher:       params.Hasher,
		gate:         newProfileGate(params.TokenService, params.Config),
		metrics:      params.Metrics,
		events:       params.Events,
		logger:       params.Logger,
		randomRead:   rand.Read,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *federationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginGoogleLogin creates the state and PKCE verifier for a new consent redirect.
func (srv *federationService) BeginGoogleLogin(ctx context.Context) (*usecase.BeginFederationOutput, error) {
	buf := make([]byte, stateBytes)
	if _, err := srv.randomRead(buf); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate oauth state")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)
	verifier := srv.oauthService.NewVerifier()

	srv.log(ctx).Debug("Starting federated login", slog.String("provider", srv.oauthService.GetProvider()))

	return &usecase.BeginFederationOutput{
		AuthURL:  srv.oauthService.AuthCodeURL(state, verifier),
		State:    state,
		Verifier: verifier,
	}, nil
}

// GoogleCallback verifies the redirect, resolves the federated identity and
// applies the profile completion gate.
func (srv *federationService) GoogleCallback(ctx context.Context, input *usecase.FederationCallbackInput) (*usecase.AuthResult, error) {
	provider := srv.oauthService.GetProvider()

	if input.State == "" || input.ExpectedState == "" ||
		subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		srv.metrics.FederationLogin(provider, metrics.OutcomeFailure)

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	assertion, err := srv.oauthService.Exchange(ctx, input.Code, input.Verifier)
	if err != nil {
		srv.metrics.FederationLogin(provider, metrics.OutcomeFailure)

		return nil, err
	}

	identity, outcome, err := srv.resolveIdentity(ctx, assertion)
	if err != nil {
		srv.metrics.FederationLogin(provider, metrics.OutcomeFailure)
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Info("Federated login rejected, email owned by another identity", slog.String("provider", provider))

			return nil, err
		}
		srv.log(ctx).Error("Failed to resolve federated identity", slog.String("provider", provider), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve federated identity")
	}
	srv.metrics.FederationLogin(provider, outcome)
	if outcome != metrics.OutcomeExisting {
		event := service.NewIdentityEvent(service.EventIdentityFederated, identity.ID)
		event.Provider = provider
		event.Outcome = outcome
		publishEvent(ctx, srv.events, srv.log(ctx), event)
	}

	result, err := srv.gate.apply(identity)
	if err != nil {
		return nil, err
	}
	if !result.Complete() {
		srv.metrics.FederationLogin(provider, metrics.OutcomeIncomplete)
	}

	srv.log(ctx).Info("Federated login resolved",
		slog.String("provider", provider),
		slog.String("identityID", identity.ID.String()),
		slog.String("outcome", outcome),
		slog.String("profileState", string(result.State)),
	)

	return result, nil
}

// resolveIdentity finds, links or creates the identity for the assertion.
// Lookups and linking share one transaction; creation runs after it so the
// placeholder is hashed with no transaction open.
func (srv *federationService) resolveIdentity(ctx context.Context, assertion *entity.FederatedAssertion) (*entity.Identity, string, error) {
	var (
		identity *entity.Identity
		outcome  string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		identity, outcome, err = srv.findOrLink(ctx, repoFactory.NewIdentityRepository(), assertion)

		return err
	})
	if err != nil {
		return nil, "", err
	}
	if identity != nil {
		return identity, outcome, nil
	}

	return srv.create(ctx, assertion)
}

// findOrLink returns nil without error when no identity matches the assertion.
func (srv *federationService) findOrLink(
	ctx context.Context,
	identityRepo repository.IdentityRepository,
	assertion *entity.FederatedAssertion,
) (*entity.Identity, string, error) {
	existing, err := identityRepo.FindByFederatedID(ctx, assertion.ProviderID)
	if err == nil {
		existing.FederationTokens = assertion.Tokens
		if err := identityRepo.Save(ctx, existing); err != nil {
			return nil, "", errors.Wrap(err, "failed to save federated identity")
		}

		return existing, metrics.OutcomeExisting, nil
	}
	if !errors.Is(err, domainerrors.ErrIdentityNotFound) {
		return nil, "", errors.Wrap(err, "failed to find identity by federated id")
	}

	byEmail, err := identityRepo.FindByEmail(ctx, entity.NormalizeEmail(assertion.Email))
	if err == nil {
		if !assertion.EmailVerified {
			return nil, "", domainerrors.ErrDuplicateEmail.WithDetails("provider email is not verified")
		}
		if linked := byEmail.ProviderID(); linked != "" && linked != assertion.ProviderID {
			return nil, "", domainerrors.ErrDuplicateEmail.WithDetails("email is linked to another provider account")
		}
		byEmail.LinkFederation(assertion.ProviderID)
		byEmail.FederationTokens = assertion.Tokens
		if err := identityRepo.Save(ctx, byEmail); err != nil {
			return nil, "", err
		}

		return byEmail, metrics.OutcomeLinked, nil
	}
	if !errors.Is(err, domainerrors.ErrIdentityNotFound) {
		return nil, "", errors.Wrap(err, "failed to find identity by email")
	}

	return nil, "", nil
}

// create persists a federation-only identity. A concurrent first login for the
// same subject makes the insert fail on whichever unique index the driver
// reports; the winning row is re-read and used instead.
func (srv *federationService) create(ctx context.Context, assertion *entity.FederatedAssertion) (*entity.Identity, string, error) {
	placeholder, err := srv.placeholderPassword()
	if err != nil {
		return nil, "", err
	}

	identity := entity.NewFederatedIdentity(*assertion, placeholder)
	if err := hashPendingPassword(ctx, srv.hasher, identity); err != nil {
		return nil, "", errors.Wrap(err, "failed to hash placeholder password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewIdentityRepository().Create(ctx, identity)
	})
	if err == nil {
		return identity, metrics.OutcomeCreated, nil
	}
	if !isUniqueViolation(err) {
		return nil, "", err
	}

	winner, reloadErr := srv.reload(ctx, assertion)
	if errors.Is(reloadErr, domainerrors.ErrIdentityNotFound) {
		// The email belongs to an identity without this subject.
		return nil, "", err
	}
	if reloadErr != nil {
		return nil, "", reloadErr
	}
	srv.log(ctx).Warn("Concurrent federated login detected, using the persisted identity",
		slog.String("identityID", winner.ID.String()),
	)

	return winner, metrics.OutcomeExisting, nil
}

func (srv *federationService) reload(ctx context.Context, assertion *entity.FederatedAssertion) (*entity.Identity, error) {
	var identity *entity.Identity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIdentityRepository().FindByFederatedID(ctx, assertion.ProviderID)
		if err != nil {
			return err
		}
		found.FederationTokens = assertion.Tokens
		identity = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read federated identity")
	}

	return identity, nil
}

// placeholderPassword satisfies the non-null hash column for federation-only
// identities. It is never returned to anyone.
func (srv *federationService) placeholderPassword() (string, error) {
	buf := make([]byte, placeholderBytes)
	if _, err := srv.randomRead(buf); err != nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "failed to generate placeholder password")
	}

	return hex.EncodeToString(buf), nil
}
