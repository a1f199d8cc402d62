package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitBetween(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 30 * time.Millisecond}

	t.Run("no new waits", func(t *testing.T) {
		_, ok := waitBetween(prev, prev)
		assert.False(t, ok)
	})

	t.Run("new waits", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 7, WaitDuration: 110 * time.Millisecond}

		wait, ok := waitBetween(prev, cur)
		assert.True(t, ok)
		assert.Equal(t, int64(4), wait.count)
		assert.Equal(t, 80*time.Millisecond, wait.duration)
		assert.Equal(t, 20*time.Millisecond, wait.average())
	})
}

func TestPoolMonitor_Report(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "short wait is debug", duration: 10 * time.Millisecond, want: `"level":"DEBUG"`},
		{name: "long wait is warn", duration: 80 * time.Millisecond, want: `"level":"WARN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			monitor := poolMonitor{
				logger:        slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				interval:      time.Second,
				warnThreshold: 50 * time.Millisecond,
			}

			monitor.report(context.Background(), poolWait{count: 2, duration: tt.duration}, sql.DBStats{MaxOpenConnections: 10})

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"waitCount":2`)
			assert.Contains(t, buf.String(), `"maxOpenConns":10`)
		})
	}
}

func TestPoolMonitor_RunWithoutIntervalReturns(t *testing.T) {
	done := make(chan struct{})
	go func() {
		poolMonitor{logger: slog.New(slog.DiscardHandler)}.run(context.Background(), &sql.DB{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not return without an interval")
	}
}
