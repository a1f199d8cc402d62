// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// identityRepository implements the domain IdentityRepository interface using GORM.
type identityRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a domain IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB, hasher service.PasswordHasher) repository.IdentityRepository {
	return &identityRepository{
		db:     db,
		hasher: hasher,
	}
}

// Create persists a new identity with a single INSERT, so a failure never leaves a partial row.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if err := identity.ValidateOrigin(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := repo.hashPendingPassword(ctx, identity); err != nil {
		return err
	}

	identityM := fromIdentityDomain(identity)
	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		return translateWriteError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return repo.findOne(ctx, "find identity by id", "id = ?", id)
}

// FindByEmail retrieves a single identity by its normalized email.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return repo.findOne(ctx, "find identity by email", "email = ?", entity.NormalizeEmail(email))
}

// FindByFederatedID retrieves a single identity by its provider subject.
func (repo *identityRepository) FindByFederatedID(ctx context.Context, providerID string) (*entity.Identity, error) {
	return repo.findOne(ctx, "find identity by federated id", "federated_id = ?", providerID)
}

// Save updates every column of an existing identity. The stored hash is only
// replaced when a new password is pending.
func (repo *identityRepository) Save(ctx context.Context, identity *entity.Identity) error {
	if err := identity.ValidateOrigin(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := repo.hashPendingPassword(ctx, identity); err != nil {
		return err
	}

	identityM := fromIdentityDomain(identity)
	identityM.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{ID: identity.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(identityM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to save identity")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIdentityNotFound
	}

	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

func (repo *identityRepository) findOne(ctx context.Context, op, query string, args ...any) (*entity.Identity, error) {
	var identityM model.IdentityModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&identityM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) hashPendingPassword(ctx context.Context, identity *entity.Identity) error {
	raw, ok := identity.PendingPassword()
	if !ok {
		return nil
	}

	hash, err := repo.hasher.Hash(ctx, raw)
	if err != nil {
		return err
	}
	identity.ApplyPasswordHash(hash)

	return nil
}

// translateWriteError converts driver errors to domain errors.
func translateWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if violatesFederatedIDIndex(err) {
			return domainerrors.ErrDuplicateFederatedID
		}

		return domainerrors.ErrDuplicateEmail
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required identity information")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toIdentityDomain(identityM *model.IdentityModel) *entity.Identity {
	origin, ok := entity.ParseOriginKind(identityM.Origin)
	if !ok {
		origin = entity.OriginLocal
	}

	identity := &entity.Identity{
		ID:           identityM.ID,
		Email:        identityM.Email,
		PasswordHash: identityM.PasswordHash,
		FederatedID:  identityM.FederatedID,
		FirstName:    identityM.FirstName,
		LastName:     identityM.LastName,
		Origin:       origin,
		CreatedAt:    identityM.CreatedAt,
		UpdatedAt:    identityM.UpdatedAt,
	}
	if identityM.Gender != nil {
		identity.Gender = entity.Gender(*identityM.Gender)
	}

	return identity
}

func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	identityM := &model.IdentityModel{
		ID:           identity.ID,
		Email:        entity.NormalizeEmail(identity.Email),
		PasswordHash: identity.PasswordHash,
		FederatedID:  identity.FederatedID,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		Origin:       string(identity.Origin),
		CreatedAt:    identity.CreatedAt,
		UpdatedAt:    identity.UpdatedAt,
	}
	if identity.Gender != "" {
		gender := identity.Gender.String()
		identityM.Gender = &gender
	}

	return identityM
}
