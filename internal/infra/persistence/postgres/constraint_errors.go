package postgres

import (
	"strings"

	"identity/internal/errors"
	"identity/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises unique violations from GORM's
// translated error as well as raw PostgreSQL and SQLite driver messages.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatesFederatedIDIndex reports whether a unique violation names the
// federated id constraint (PostgreSQL) or column (SQLite).
func violatesFederatedIDIndex(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, model.IdentityFederatedIDIndex) ||
		strings.Contains(errMsg, "identities.federated_id")
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
