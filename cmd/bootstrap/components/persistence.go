package components

import (
	"log/slog"

	"checkin-core/internal/infra/liveness"
	"checkin-core/internal/infra/remote"
	"checkin-core/internal/pkg/config"
	"checkin-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	remoteModule,
)

var remoteModule = fx.Module("persistence/remote",
	fx.Provide(
		fx.Annotate(
			remote.NewPostgresStore,
			fx.As(fx.Self()),
			fx.As(new(shared.RemoteStore)),
		),
		fx.Annotate(
			NewProbe,
			fx.As(fx.Self()),
			fx.As(new(shared.Liveness)),
		),
	),
)

func NewProbe(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *liveness.Probe {
	return liveness.NewProbe(pool, logger, liveness.Config{
		Interval: cfg.Offline.LivenessInterval,
		Timeout:  cfg.Offline.LivenessTimeout,
	})
}
