package bootstrap

import (
	"context"
	"log/slog"

	"checkin-core/internal/infra/localcache"
	"checkin-core/internal/pkg/config"
	"checkin-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var LocalCacheModule = fx.Module("localcache",
	fx.Provide(
		fx.Annotate(
			NewLocalCache,
			fx.As(fx.Self()),
			fx.As(new(shared.QueueStore)),
			fx.As(new(shared.HistoryStore)),
		),
	),
)

func NewLocalCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*localcache.Cache, error) {
	cache, err := localcache.Open(cfg.Offline.CachePath)
	if err != nil {
		return nil, err
	}
	logger.Info("local cache opened", "path", cfg.Offline.CachePath)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return cache.Close()
		},
	})
	return cache, nil
}
