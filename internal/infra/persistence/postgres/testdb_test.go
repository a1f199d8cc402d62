package postgres

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the identity schema.
func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, Migrate(db))

	return db
}

// countingHasher is a reversible stand-in for bcrypt that records how often it hashes.
type countingHasher struct {
	calls atomic.Int32
}

func (h *countingHasher) Hash(_ context.Context, password string) (string, error) {
	n := h.calls.Add(1)

	return fmt.Sprintf("hashed:%d:%s", n, password), nil
}

func (h *countingHasher) Check(_ context.Context, password, hash string) bool {
	return strings.HasPrefix(hash, "hashed:") && strings.HasSuffix(hash, ":"+password)
}
