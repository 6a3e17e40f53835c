package bootstrap

import (
	"context"
	"log/slog"

	"staymarket/internal/infra/cache"
	"staymarket/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		cache.NewRedisDriver,
		NewCacheService,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewCacheService(driver cache.Driver, cfg config.Config, logger *slog.Logger) *cache.Service {
	return cache.NewService(driver, cache.Options{
		LockTTL:     cfg.Cache.LockTTL,
		LockRetries: cfg.Cache.LockRetries,
		LockBackoff: cfg.Cache.LockBackoff,
	}, logger)
}
