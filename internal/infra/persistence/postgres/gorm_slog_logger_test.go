package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"identity/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	cfg := &config.Config{}
	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), "SELECT 1 WHERE a = ?", "secret")
	assert.Equal(t, "SELECT 1 WHERE a = ?", sql)
	assert.Nil(t, params)

	cfg.Env.Debug = true
	debug := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	_, params = debug.ParamsFilter(context.Background(), "SELECT 1 WHERE a = ?", "secret")
	assert.Equal(t, []any{"secret"}, params)
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Second

	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, time.Second, l.slowThreshold)

	l = newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT * FROM identities", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
