package impl

import (
	"context"
	"fmt"
	"testing"

	"identity/internal/domain/entity"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/infra/auth"
	"identity/internal/infra/persistence/model"
	"identity/internal/infra/persistence/postgres"
	mockSvc "identity/internal/mocks/service"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// interleavingTxManager runs afterFirst once the first transaction returns,
// standing in for a concurrent request that commits between lookup and insert.
type interleavingTxManager struct {
	repository.TransactionManager
	afterFirst func()
	calls      int
}

func (m *interleavingTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := m.TransactionManager.Execute(ctx, fn)
	m.calls++
	if m.calls == 1 && m.afterFirst != nil {
		m.afterFirst()
	}

	return err
}

func newSQLiteStore(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))

	return db
}

func TestFederationService_ConcurrentFirstLoginAgainstStore(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteStore(t)
	hasher, err := auth.NewBcryptHasherWithCost(4, 2)
	require.NoError(t, err)

	assertion := googleAssertion(false)
	var winner *entity.Identity
	txManager := &interleavingTxManager{
		TransactionManager: postgres.NewTransactionManager(db, hasher),
		afterFirst: func() {
			winner = entity.NewFederatedIdentity(*assertion, "other-placeholder")
			require.NoError(t, postgres.NewIdentityRepository(db, hasher).Create(ctx, winner))
		},
	}

	oauthService := mockSvc.NewMockOAuthService(t)
	oauthService.EXPECT().GetProvider().Return("google").Maybe()
	oauthService.EXPECT().Exchange(ctx, "auth-code", "verifier").Return(assertion, nil)
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().IssueProfileCompletion(mock.AnythingOfType("uuid.UUID")).
		Return(&service.IssuedToken{Value: "pending"}, nil)

	federation := NewFederationService(FederationServiceParams{
		TxManager:    txManager,
		OAuthService: oauthService,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	result, err := federation.GoogleCallback(ctx, validCallback())

	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, winner.ID, result.Identity.ID)
	assert.False(t, result.Complete())

	var count int64
	require.NoError(t, db.Model(&model.IdentityModel{}).Where("federated_id = ?", "g123").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
