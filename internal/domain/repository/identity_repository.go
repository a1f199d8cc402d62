// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityRepository is the Identity Store. Implementations enforce email and
// federated id uniqueness in storage and hash a pending password on write.
//
// Errors are domain errors: ErrIdentityNotFound, ErrDuplicateEmail,
// ErrDuplicateFederatedID, ErrValidationFailed and store failures that satisfy
// errors.Is(err, ErrStoreFailure).
type IdentityRepository interface {
	// Create persists a new identity atomically, hashing its pending password.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByFederatedID retrieves a single identity by its provider subject.
	FindByFederatedID(ctx context.Context, providerID string) (*entity.Identity, error)

	// Save re-persists a mutated identity. The hash is recomputed only when a
	// new password was set since the identity was loaded.
	Save(ctx context.Context, identity *entity.Identity) error
}
