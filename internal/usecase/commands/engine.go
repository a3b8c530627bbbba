//go:generate mockgen -source=engine.go -destination=../../../tests/mock/commands/engine.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/metrics"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

// ServiceCommands is every mutation the operator-facing layer can issue.
type ServiceCommands interface {
	BookShower(ctx context.Context, in BookSlotInput) (Result, error)
	JoinShowerWaitlist(ctx context.Context, in WaitlistInput) (Result, error)
	BookLaundry(ctx context.Context, in LaundryInput) (Result, error)
	LogBicycleRepair(ctx context.Context, in RepairInput) (Result, error)
	LogService(ctx context.Context, in LogInput) (Result, error)

	UpdateStatus(ctx context.Context, id string, status service.Status) (service.Record, error)
	RescheduleShower(ctx context.Context, id, slotKey string) (service.Record, error)
	UpdateBagNumber(ctx context.Context, id, bagNumber string) (service.Record, error)
	CancelRecord(ctx context.Context, id string) (service.Record, error)
	UpdateSubject(ctx context.Context, patch guest.Patch) (guest.Subject, error)
}

// EligibilityChecker gates creations on subject restrictions.
type EligibilityChecker interface {
	CheckEligible(ctx context.Context, subjectID string, t service.Type) error
}

// OfflineQueue takes creations the store could not accept right now.
type OfflineQueue interface {
	Enqueue(ctx context.Context, resource service.Resource, rec service.Record) (string, error)
	Amend(ctx context.Context, rec service.Record) error
}

type HistoryJournal interface {
	Persist(ctx context.Context)
}

// Result is the outcome of a creation. Queued is set when the record only
// exists locally and waits in the offline queue.
type Result struct {
	Record    service.Record
	Queued    bool
	HistoryID string
}

type Config struct {
	Location           *time.Location
	StrictRevalidation bool
}

// Engine applies mutations to local state first, confirms them with the
// remote store, and rolls back or queues when the store says no.
type Engine struct {
	store    *state.Store
	remote   shared.RemoteStore
	guard    EligibilityChecker
	queue    OfflineQueue
	journal  HistoryJournal
	liveness shared.Liveness
	notifier shared.Notifier
	trigger  shared.SyncTrigger
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
	cfg      Config
}

type Deps struct {
	Store    *state.Store
	Remote   shared.RemoteStore
	Guard    EligibilityChecker
	Queue    OfflineQueue
	Journal  HistoryJournal
	Liveness shared.Liveness
	Notifier shared.Notifier
	Trigger  shared.SyncTrigger
	Clock    clock.Clock
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

func NewEngine(d Deps, cfg Config) *Engine {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Engine{
		store:    d.Store,
		remote:   d.Remote,
		guard:    d.Guard,
		queue:    d.Queue,
		journal:  d.Journal,
		liveness: d.Liveness,
		notifier: d.Notifier,
		trigger:  d.Trigger,
		clock:    d.Clock,
		metrics:  d.Metrics,
		logger:   d.Logger,
		cfg:      cfg,
	}
}

func (e *Engine) today() string {
	return service.DateKey(e.clock.Now(), e.cfg.Location)
}

func (e *Engine) dateOr(override string) string {
	if override != "" {
		return override
	}
	return e.today()
}

func (e *Engine) persistHistory(ctx context.Context) {
	if e.journal != nil {
		e.journal.Persist(ctx)
	}
}
