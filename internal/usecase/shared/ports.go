//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

package shared

import (
	"context"
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
)

// RemoteStore is the authoritative record store. Every call can fail, and an
// unreachable store is reported as infra.KindUnavailable.
type RemoteStore interface {
	// InsertRecord writes a new record and returns the stored row with its assigned id.
	InsertRecord(ctx context.Context, rec service.Record) (service.Record, error)
	UpdateRecord(ctx context.Context, rec service.Record) (service.Record, error)
	// UpsertRecord writes rec under its own id, recreating it if it was removed.
	UpsertRecord(ctx context.Context, rec service.Record) (service.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	// CountActiveInSlot counts records occupying (t, date, slotKey), excluding cancelled and waitlisted.
	CountActiveInSlot(ctx context.Context, t service.Type, date, slotKey string) (int, error)
	ListRecords(ctx context.Context, date string) ([]service.Record, error)
	GetSubject(ctx context.Context, id string) (guest.Subject, error)
	UpdateSubject(ctx context.Context, s guest.Subject) (guest.Subject, error)
}

// Liveness is the sampled "is the store reachable" signal.
type Liveness interface {
	Online() bool
}

// Notifier is the operator-facing message sink. Calls never block on delivery.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Warning(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// QueueEntry is one deferred insert waiting for the store to come back.
type QueueEntry struct {
	QueueID   string           `json:"queueId"`
	Resource  service.Resource `json:"resource"`
	Op        QueueOp          `json:"op"`
	Payload   service.Record   `json:"payload"`
	CreatedAt time.Time        `json:"createdAt"`
	Attempts  int              `json:"attempts"`
	LastError string           `json:"lastError,omitempty"`
}

type QueueOp string

const QueueOpInsert QueueOp = "insert"

// QueueStore persists offline queue entries across restarts.
type QueueStore interface {
	SaveQueueEntry(ctx context.Context, e QueueEntry) error
	DeleteQueueEntry(ctx context.Context, queueID string) error
	LoadQueueEntries(ctx context.Context) ([]QueueEntry, error)
}

// HistoryStore persists the action history, newest first.
type HistoryStore interface {
	SaveHistory(ctx context.Context, entries []history.Entry) error
	LoadHistory(ctx context.Context) ([]history.Entry, error)
}

// SyncSignal tells peers a resource class changed.
type SyncSignal struct {
	Resource service.Resource `json:"resource"`
	Date     string           `json:"date,omitempty"`
	Origin   string           `json:"origin"`
	At       time.Time        `json:"at"`
}

type SyncPublisher interface {
	Publish(ctx context.Context, sig SyncSignal) error
}

type SyncSubscriber interface {
	// Subscribe delivers signals until ctx is done or the returned close func is called.
	Subscribe(ctx context.Context) (<-chan SyncSignal, func() error, error)
}

// SyncTrigger is fired after every successful local write.
type SyncTrigger interface {
	Fire(ctx context.Context, resource service.Resource)
}
