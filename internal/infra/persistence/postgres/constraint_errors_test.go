package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm translated", err: errors.Wrap(gorm.ErrDuplicatedKey, "create"), want: true},
		{name: "postgres", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_identities_email" (SQLSTATE 23505)`), want: true},
		{name: "sqlite", err: errors.New("constraint failed: UNIQUE constraint failed: identities.email (2067)"), want: true},
		{name: "other", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestViolatesFederatedIDIndex(t *testing.T) {
	assert.True(t, violatesFederatedIDIndex(errors.New(`duplicate key value violates unique constraint "idx_identities_federated_id"`)))
	assert.True(t, violatesFederatedIDIndex(errors.New("UNIQUE constraint failed: identities.federated_id")))
	assert.False(t, violatesFederatedIDIndex(errors.New("UNIQUE constraint failed: identities.email")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: identities.email")))
	assert.False(t, isNotNullConstraintViolation(errors.New("syntax error")))
}
