package bootstrap

import (
	"context"
	"log/slog"

	"checkin-core/internal/infra/syncbus"
	"checkin-core/internal/pkg/config"
	"checkin-core/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SyncBusModule = fx.Module("syncbus",
	fx.Provide(
		NewSyncBus,
		NewSyncPublisher,
		NewSyncSubscriber,
	),
)

// NewSyncBus returns nil when SYNC_REDIS_ADDR is unset; the client then runs
// standalone and relies on its own resyncs.
func NewSyncBus(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *syncbus.Bus {
	if cfg.Sync.RedisAddr == "" {
		logger.Info("sync bus disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Sync.RedisAddr,
		Password: cfg.Sync.RedisPassword,
		DB:       cfg.Sync.RedisDB,
	})
	bus := syncbus.New(rdb, cfg.Sync.Channel, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})
	return bus
}

func NewSyncPublisher(bus *syncbus.Bus) shared.SyncPublisher {
	if bus == nil {
		return nil
	}
	return bus
}

func NewSyncSubscriber(bus *syncbus.Bus) shared.SyncSubscriber {
	if bus == nil {
		return nil
	}
	return bus
}
