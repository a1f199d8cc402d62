package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/infra/auth"
	"identity/internal/infra/validation"
	mockRepo "identity/internal/mocks/repository"
	mockSvc "identity/internal/mocks/service"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	tokenService *mockSvc.MockTokenService
	validator    *mockSvc.MockCredentialValidator
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		validator:    mockSvc.NewMockCredentialValidator(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:    fx.txManager,
		IdentityRepo: fx.identityRepo,
		TokenService: fx.tokenService,
		Validator:    fx.validator,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestProfileService_CompleteProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	identity := federatedIdentity("g123")
	issued := &service.IssuedToken{Value: "session-token"}

	fx.tokenService.EXPECT().VerifyProfileCompletion("pending").Return(identity.ID, nil)
	fx.validator.EXPECT().ValidateGender("Female").Return(entity.GenderFemale, nil)
	expectTx(t, fx.txManager, fx.identityRepo)
	fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
	fx.identityRepo.EXPECT().Save(ctx, identity).Return(nil)
	fx.tokenService.EXPECT().IssueSession(mock.AnythingOfType("entity.SessionSnapshot")).
		RunAndReturn(func(snapshot entity.SessionSnapshot) (*service.IssuedToken, error) {
			assert.Equal(t, entity.GenderFemale, snapshot.Gender)

			return issued, nil
		})

	result, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{
		IdentityID: identity.ID, Gender: "Female", PendingToken: "pending",
	})

	require.NoError(t, err)
	assert.True(t, result.Complete())
	assert.Equal(t, issued, result.Session)
	assert.Equal(t, "/home", result.RedirectURL)
	assert.Equal(t, entity.ProfileComplete, identity.ProfileState())
}

func TestProfileService_CompleteProfile_InvalidGenderLeavesStateUnchanged(t *testing.T) {
	fx := createTestProfileService(t)
	identity := federatedIdentity("g123")

	fx.identityRepo.EXPECT().FindByID(mock.Anything, identity.ID).Return(identity, nil)
	fx.tokenService.EXPECT().VerifyProfileCompletion("pending").Return(identity.ID, nil)
	fx.validator.EXPECT().ValidateGender("Unknown").Return("", domainerrors.ErrInvalidGender)

	result, err := fx.service.CompleteProfile(context.Background(), &usecase.CompleteProfileInput{
		IdentityID: identity.ID, Gender: "Unknown", PendingToken: "pending",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGender)
	assert.Equal(t, entity.ProfileIncomplete, identity.ProfileState())
}

func TestProfileService_CompleteProfile_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing identity", func(t *testing.T) {
		fx := createTestProfileService(t)
		id := uuid.New()
		fx.identityRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrIdentityNotFound)

		_, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{
			IdentityID: id, Gender: "Male", PendingToken: "pending",
		})

		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	})

	t.Run("already complete", func(t *testing.T) {
		fx := createTestProfileService(t)
		identity := completeIdentity()
		fx.tokenService.EXPECT().VerifyProfileCompletion("pending").Return(identity.ID, nil)
		fx.validator.EXPECT().ValidateGender("Male").Return(entity.GenderMale, nil)
		expectTx(t, fx.txManager, fx.identityRepo)
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)

		_, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{
			IdentityID: identity.ID, Gender: "Male", PendingToken: "pending",
		})

		assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyComplete)
		assert.Equal(t, entity.GenderFemale, identity.Gender)
	})

	t.Run("store failure on lookup", func(t *testing.T) {
		fx := createTestProfileService(t)
		id := uuid.New()
		fx.identityRepo.EXPECT().FindByID(ctx, id).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("down"), "find identity"))

		_, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{
			IdentityID: id, Gender: "Male", PendingToken: "pending",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	})

	t.Run("proof bound to another identity", func(t *testing.T) {
		fx := createTestProfileService(t)
		identity := federatedIdentity("g123")
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
		fx.tokenService.EXPECT().VerifyProfileCompletion("pending").Return(uuid.New(), nil)

		_, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{
			IdentityID: identity.ID, Gender: "Male", PendingToken: "pending",
		})

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("missing proof", func(t *testing.T) {
		fx := createTestProfileService(t)
		identity := federatedIdentity("g123")
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
		fx.tokenService.EXPECT().VerifyProfileCompletion("").Return(uuid.Nil, domainerrors.ErrTokenInvalid)

		_, err := fx.service.CompleteProfile(ctx, &usecase.CompleteProfileInput{IdentityID: identity.ID, Gender: "Male"})

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})
}

func TestProfileService_CompleteProfile_WithSignedProof(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	cfg.SecretKey.Session = "profile-completion-secret-0123456789"
	cfg.Auth.SessionTTL = time.Hour
	cfg.Auth.PendingProfileTTL = 15 * time.Minute
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	newService := func(identityRepo *mockRepo.MockIdentityRepository, txManager *mockRepo.MockTransactionManager) usecase.ProfileUsecase {
		return NewProfileService(ProfileServiceParams{
			TxManager:    txManager,
			IdentityRepo: identityRepo,
			TokenService: tokenService,
			Validator:    validation.NewCredentialValidator(),
			Config:       cfg,
			Logger:       newDiscardLogger(),
		})
	}

	t.Run("unknown identity without proof is not found", func(t *testing.T) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		id := uuid.New()
		identityRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrIdentityNotFound)

		_, err := newService(identityRepo, mockRepo.NewMockTransactionManager(t)).
			CompleteProfile(ctx, &usecase.CompleteProfileInput{IdentityID: id, Gender: "Female"})

		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("known identity without proof is rejected", func(t *testing.T) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		identity := federatedIdentity("g123")
		identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)

		_, err := newService(identityRepo, mockRepo.NewMockTransactionManager(t)).
			CompleteProfile(ctx, &usecase.CompleteProfileInput{IdentityID: identity.ID, Gender: "Female"})

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Equal(t, entity.ProfileIncomplete, identity.ProfileState())
	})

	t.Run("issued proof completes the profile", func(t *testing.T) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		txManager := mockRepo.NewMockTransactionManager(t)
		identity := federatedIdentity("g123")
		proof, err := tokenService.IssueProfileCompletion(identity.ID)
		require.NoError(t, err)

		identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
		expectTx(t, txManager, identityRepo)
		identityRepo.EXPECT().Save(ctx, identity).Return(nil)

		result, err := newService(identityRepo, txManager).CompleteProfile(ctx, &usecase.CompleteProfileInput{
			IdentityID: identity.ID, Gender: "Female", PendingToken: proof.Value,
		})

		require.NoError(t, err)
		assert.True(t, result.Complete())
		verified, err := tokenService.VerifySession(result.Session.Value)
		require.NoError(t, err)
		assert.Equal(t, entity.GenderFemale, verified.Snapshot.Gender)
	})
}

func TestProfileService_GetPendingProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("incomplete", func(t *testing.T) {
		fx := createTestProfileService(t)
		identity := federatedIdentity("g123")
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)

		got, err := fx.service.GetPendingProfile(ctx, identity.ID)

		require.NoError(t, err)
		assert.Same(t, identity, got)
	})

	t.Run("complete", func(t *testing.T) {
		fx := createTestProfileService(t)
		identity := completeIdentity()
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)

		_, err := fx.service.GetPendingProfile(ctx, identity.ID)

		assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyComplete)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestProfileService(t)
		id := uuid.New()
		fx.identityRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrIdentityNotFound)

		_, err := fx.service.GetPendingProfile(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	})
}
