package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"identity/config"
	"identity/internal/domain/lifecycle"
	"identity/internal/errors"
	"identity/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Identity schema migrated")
			}

			monitor := poolMonitor{
				logger:        params.Logger,
				interval:      params.Config.Database.PoolMonitorInterval,
				warnThreshold: params.Config.Database.PoolWaitWarnThreshold,
			}
			go monitor.run(monitorCtx, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the identities table and its unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.IdentityModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate identities table")
	}

	return nil
}

// poolWait is the connection wait observed between two pool samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func (w poolWait) average() time.Duration {
	if w.count == 0 {
		return 0
	}

	return w.duration / time.Duration(w.count)
}

// waitBetween reports the waits recorded after prev, or false when nothing waited.
func waitBetween(prev, cur sql.DBStats) (poolWait, bool) {
	wait := poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}

	return wait, wait.count > 0
}

type poolMonitor struct {
	logger        *slog.Logger
	interval      time.Duration
	warnThreshold time.Duration
}

func (m poolMonitor) run(ctx context.Context, sqlDB *sql.DB) {
	if m.logger == nil || sqlDB == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if wait, ok := waitBetween(prev, cur); ok {
				m.report(ctx, wait, cur)
			}
			prev = cur
		}
	}
}

func (m poolMonitor) report(ctx context.Context, wait poolWait, cur sql.DBStats) {
	level := slog.LevelDebug
	if wait.duration >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Identity store pool wait",
		slog.Int64("waitCount", wait.count),
		slog.Duration("waitDuration", wait.duration),
		slog.Duration("avgWait", wait.average()),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
