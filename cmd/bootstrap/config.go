package bootstrap

import (
	"time"

	"checkin-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the center's timezone; every date key is computed in it.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
