package components

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra/notify"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/config"
	"checkin-core/internal/pkg/metrics"
	"checkin-core/internal/usecase"
	"checkin-core/internal/usecase/commands"
	"checkin-core/internal/usecase/eligibility"
	historyuc "checkin-core/internal/usecase/history"
	"checkin-core/internal/usecase/offline"
	"checkin-core/internal/usecase/queries"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
	"checkin-core/internal/usecase/synctrigger"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSyncModule,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewStateStore,
	fx.Annotate(
		NewNotifier,
		fx.As(fx.Self()),
		fx.As(new(shared.Notifier)),
	),
)

var usecaseSyncModule = fx.Module("usecase/sync",
	fx.Provide(
		fx.Annotate(
			NewTrigger,
			fx.As(fx.Self()),
			fx.As(new(shared.SyncTrigger)),
		),
		synctrigger.NewResyncer,
		synctrigger.NewListener,
		NewPoller,
		fx.Annotate(
			offline.NewQueue,
			fx.As(fx.Self()),
			fx.As(new(commands.OfflineQueue)),
			fx.As(new(historyuc.QueueEditor)),
			fx.As(new(offline.Flusher)),
		),
		NewWorker,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			historyuc.NewJournal,
			fx.As(fx.Self()),
			fx.As(new(commands.HistoryJournal)),
		),
		fx.Annotate(
			eligibility.NewGuard,
			fx.As(new(commands.EligibilityChecker)),
		),
		NewEngine,
		fx.Annotate(
			historyuc.NewUndoer,
			fx.As(new(historyuc.UndoCommands)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewBoardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewStateStore(cfg config.Config) *state.Store {
	return state.NewStore(slot.Capacities{
		service.TypeShower:  cfg.Booking.ShowerCapacity,
		service.TypeLaundry: cfg.Booking.LaundryCapacity,
	}, cfg.Booking.HistoryLimit)
}

func NewNotifier(clk clock.Clock, logger *slog.Logger) *notify.LogNotifier {
	return notify.NewLogNotifier(clk, logger, 0)
}

// NewTrigger tags outgoing signals with a per-process origin so the listener
// can skip its own echoes.
func NewTrigger(pub shared.SyncPublisher, clk clock.Clock, loc *time.Location, logger *slog.Logger) *synctrigger.Trigger {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "checkin"
	}
	origin := fmt.Sprintf("%s-%s", host, uuid.NewString()[:8])
	return synctrigger.New(pub, clk, origin, loc, logger)
}

func NewPoller(store *state.Store, resyncer *synctrigger.Resyncer, liveness shared.Liveness, clk clock.Clock, loc *time.Location, cfg config.Config, logger *slog.Logger) *synctrigger.Poller {
	return synctrigger.NewPoller(store, resyncer, liveness, clk, loc, logger, synctrigger.PollerConfig{Interval: cfg.Sync.ResyncInterval})
}

func NewWorker(queue offline.Flusher, liveness shared.Liveness, cfg config.Config, logger *slog.Logger) *offline.Worker {
	return offline.NewWorker(queue, liveness, logger, offline.WorkerConfig{Interval: cfg.Offline.FlushInterval})
}

type EngineParams struct {
	fx.In

	Store    *state.Store
	Remote   shared.RemoteStore
	Guard    commands.EligibilityChecker
	Queue    commands.OfflineQueue
	Journal  commands.HistoryJournal
	Liveness shared.Liveness
	Notifier shared.Notifier
	Trigger  shared.SyncTrigger
	Clock    clock.Clock
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Location *time.Location
	Config   config.Config
}

func NewEngine(p EngineParams) commands.ServiceCommands {
	return commands.NewEngine(commands.Deps{
		Store:    p.Store,
		Remote:   p.Remote,
		Guard:    p.Guard,
		Queue:    p.Queue,
		Journal:  p.Journal,
		Liveness: p.Liveness,
		Notifier: p.Notifier,
		Trigger:  p.Trigger,
		Clock:    p.Clock,
		Metrics:  p.Metrics,
		Logger:   p.Logger,
	}, commands.Config{
		Location:           p.Location,
		StrictRevalidation: p.Config.Booking.StrictRevalidate,
	})
}

func NewBoardQueries(store *state.Store, liveness shared.Liveness, queue *offline.Queue, trigger *synctrigger.Trigger, notifier *notify.LogNotifier) queries.BoardQueries {
	return queries.NewBoardQueries(store, liveness, queue, trigger, notifier.Feed())
}
