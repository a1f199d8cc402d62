package revocation

import (
	"context"
	"log/slog"
	"time"

	"identity/config"
	"identity/internal/domain/lifecycle"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// redisDenylist stores revoked token ids as keys expiring with the token.
type redisDenylist struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisDenylist wraps an existing client.
func NewRedisDenylist(client redis.UniversalClient, prefix string) service.SessionDenylist {
	return &redisDenylist{client: client, prefix: prefix}
}

func (d *redisDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, d.prefix+jti, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set revoked session")
	}

	return nil
}

func (d *redisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.prefix+jti).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis check revoked session")
	}

	return n > 0, nil
}

// Params defines the dependencies for choosing a denylist backend.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis denylist when Redis is configured and the in-memory
// denylist otherwise. The Redis client is pinged on start and closed on stop.
func New(params Params) service.SessionDenylist {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory session denylist")

		return NewMemoryDenylist()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Redis session denylist connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisDenylist(client, cfg.KeyPrefix)
}
