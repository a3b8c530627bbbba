package components

import (
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/handler"
	"checkin-core/internal/handler/api"
	"checkin-core/internal/handler/middleware"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/commands"
	"checkin-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewServiceHandler,
		api.NewHistoryHandler,
		api.NewSyncHandler,
		api.NewSubjectHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewServiceHandler(cmds commands.ServiceCommands, q queries.BoardQueries, clk clock.Clock, loc *time.Location) *api.ServiceHandler {
	return api.NewServiceHandler(cmds, q, func() string {
		return service.DateKey(clk.Now(), loc)
	})
}
