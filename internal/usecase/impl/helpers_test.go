package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"identity/config"
	"identity/internal/domain/entity"
	"identity/internal/domain/repository"
	mockRepo "identity/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			LandingPath:           "/home",
			ProfileCompletionPath: "/auth/complete-profile",
		},
	}
}

// expectTx makes txManager run the callback against a factory handing out identityRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, identityRepo repository.IdentityRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewIdentityRepository().Return(identityRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// expectTrackedTx is expectTx that also records "begin" in steps when the transaction opens.
func expectTrackedTx(t *testing.T, txManager *mockRepo.MockTransactionManager, identityRepo repository.IdentityRepository, steps *[]string) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewIdentityRepository().Return(identityRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			*steps = append(*steps, "begin")

			return fn(factory)
		})
}

func completeIdentity() *entity.Identity {
	identity := entity.NewLocalIdentity("a@x.com", "secret1")
	identity.ApplyPasswordHash("hashed")
	identity.FirstName = "Ada"
	identity.LastName = "Lovelace"
	identity.Gender = entity.GenderFemale

	return identity
}

func federatedIdentity(providerID string) *entity.Identity {
	identity := entity.NewFederatedIdentity(entity.FederatedAssertion{
		ProviderID: providerID,
		Email:      "a@x.com",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	}, "placeholder")
	identity.ApplyPasswordHash("placeholder-hash")

	return identity
}
