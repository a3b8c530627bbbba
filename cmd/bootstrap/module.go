package bootstrap

import (
	"checkin-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	LocalCacheModule,
	SyncBusModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	BackgroundModule,
)
