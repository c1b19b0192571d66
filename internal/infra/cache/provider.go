package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"gameapi/config"
	"gameapi/internal/domain/lifecycle"
	"gameapi/internal/domain/repository"
	"gameapi/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis-backed player cache when enabled, otherwise a no-op cache.
func New(params Params) repository.PlayerCache {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Player cache disabled")

		return NewNoopPlayerCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Player cache connected",
				slog.String("addr", cfg.Addr),
				slog.Int("db", cfg.DB),
				slog.Duration("ttl", cfg.PlayerTTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisPlayerCache(client, cfg.PlayerTTL)
}
