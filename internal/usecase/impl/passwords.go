package impl

import (
	"context"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"

	"github.com/pkg/errors"
)

// hashPendingPassword hashes the pending password of identity in place. Callers
// run it before opening a transaction so no pooled connection waits on bcrypt.
func hashPendingPassword(ctx context.Context, hasher service.PasswordHasher, identity *entity.Identity) error {
	raw, ok := identity.PendingPassword()
	if !ok {
		return nil
	}

	hash, err := hasher.Hash(ctx, raw)
	if err != nil {
		return err
	}
	identity.ApplyPasswordHash(hash)

	return nil
}

// isClientError reports failures caused by the request rather than the service.
func isClientError(err error) bool {
	return errors.Is(err, domainerrors.ErrValidationFailed) ||
		errors.Is(err, domainerrors.ErrDuplicateEmail) ||
		errors.Is(err, domainerrors.ErrDuplicateFederatedID)
}

// isUniqueViolation reports whether a write lost a uniqueness race.
func isUniqueViolation(err error) bool {
	return errors.Is(err, domainerrors.ErrDuplicateEmail) || errors.Is(err, domainerrors.ErrDuplicateFederatedID)
}
