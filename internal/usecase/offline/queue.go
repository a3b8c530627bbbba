package offline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/pkg/metrics"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"

	"github.com/google/uuid"
)

type Entry = shared.QueueEntry

type FlushResult struct {
	Synced    int `json:"synced"`
	Rejected  int `json:"rejected"`
	Remaining int `json:"remaining"`
}

// Queue holds inserts made while the store was unreachable. Each entry has a
// placeholder record in local state until it is drained.
type Queue struct {
	mu      sync.Mutex
	flushMu sync.Mutex
	entries []Entry

	store    *state.Store
	remote   shared.RemoteStore
	persist  shared.QueueStore
	notifier shared.Notifier
	trigger  shared.SyncTrigger
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewQueue(
	store *state.Store,
	remote shared.RemoteStore,
	persist shared.QueueStore,
	notifier shared.Notifier,
	trigger shared.SyncTrigger,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Queue {
	return &Queue{
		store:    store,
		remote:   remote,
		persist:  persist,
		notifier: notifier,
		trigger:  trigger,
		clock:    clk,
		metrics:  m,
		logger:   logger,
	}
}

// Restore reloads persisted entries and puts their placeholders back into state.
func (q *Queue) Restore(ctx context.Context) error {
	if q.persist == nil {
		return nil
	}
	loaded, err := q.persist.LoadQueueEntries(ctx)
	if err != nil {
		return errs.Wrap(err, "load offline queue")
	}
	sort.SliceStable(loaded, func(i, j int) bool { return loaded[i].CreatedAt.Before(loaded[j].CreatedAt) })

	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = loaded
	for _, e := range loaded {
		q.store.Update(state.InsertRecord(e.Payload))
	}
	q.metrics.QueueDepth(len(q.entries))
	if len(loaded) > 0 {
		q.logger.Info("offline queue restored", "entries", len(loaded))
	}
	return nil
}

// Enqueue stores rec for a later insert and adds its placeholder to local state.
// rec.ID must be a placeholder id; one is generated when it is not.
func (q *Queue) Enqueue(ctx context.Context, resource service.Resource, rec service.Record) (string, error) {
	if !resource.Valid() {
		return "", errs.Wrapf(errs.ErrInvalidInput, "resource %q", resource)
	}
	if !service.IsPlaceholderID(rec.ID) {
		rec.ID = service.NewPlaceholderID()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	entry := Entry{
		QueueID:   uuid.NewString(),
		Resource:  resource,
		Op:        shared.QueueOpInsert,
		CreatedAt: q.clock.Now(),
	}
	rec.PendingSync = true
	rec.QueueID = entry.QueueID
	entry.Payload = rec

	if q.persist != nil {
		if err := q.persist.SaveQueueEntry(ctx, entry); err != nil {
			return "", errs.Wrap(err, "persist queue entry")
		}
	}
	q.entries = append(q.entries, entry)
	q.store.Update(state.InsertRecord(rec))
	q.metrics.QueueDepth(len(q.entries))
	return entry.QueueID, nil
}

// Amend replaces the payload of a queued insert so edits made to a placeholder
// are what eventually reaches the store.
func (q *Queue) Amend(ctx context.Context, rec service.Record) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx := q.indexOf(rec.QueueID)
	if idx < 0 {
		return errs.Wrapf(errs.ErrNotFound, "queue entry %s", rec.QueueID)
	}
	next := q.entries[idx]
	rec.PendingSync = true
	next.Payload = rec
	if q.persist != nil {
		if err := q.persist.SaveQueueEntry(ctx, next); err != nil {
			return errs.Wrap(err, "persist queue entry")
		}
	}
	q.entries[idx] = next
	return nil
}

// Discard drops a queued insert without sending it. The placeholder is left
// for the caller to remove.
func (q *Queue) Discard(ctx context.Context, queueID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.removeLocked(ctx, queueID)
}

func (q *Queue) Pending() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Entry(nil), q.entries...)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Flush drains the queue oldest first. It stops at the first unavailable
// error and keeps the rest; a rejected entry is dropped with its placeholder.
func (q *Queue) Flush(ctx context.Context) (FlushResult, error) {
	q.flushMu.Lock()
	defer q.flushMu.Unlock()

	var res FlushResult
	synced := map[service.Resource]bool{}
	defer func() {
		for r := range synced {
			q.trigger.Fire(ctx, r)
		}
	}()

	for _, head := range q.Pending() {
		stop, err := q.flushOne(ctx, head.QueueID, &res, synced)
		if stop {
			res.Remaining = q.Len()
			return res, err
		}
	}
	res.Remaining = q.Len()
	return res, nil
}

func (q *Queue) flushOne(ctx context.Context, queueID string, res *FlushResult, synced map[service.Resource]bool) (bool, error) {
	q.mu.Lock()
	idx := q.indexOf(queueID)
	if idx < 0 {
		q.mu.Unlock()
		return false, nil
	}
	placeholderID := q.entries[idx].Payload.ID
	q.mu.Unlock()

	// record lock first: edits and undo hold it while they amend or discard
	unlock := q.store.Lock(placeholderID)
	defer unlock()

	q.mu.Lock()
	idx = q.indexOf(queueID)
	if idx < 0 {
		q.mu.Unlock()
		return false, nil
	}
	entry := q.entries[idx]
	q.mu.Unlock()

	toInsert := entry.Payload.Clone()
	toInsert.ID = ""
	toInsert.PendingSync = false
	toInsert.QueueID = ""

	committed, err := q.remote.InsertRecord(ctx, toInsert)
	switch {
	case err == nil:
		q.store.Update(state.Reconcile(placeholderID, committed))
		q.mu.Lock()
		_ = q.removeLocked(ctx, queueID)
		q.mu.Unlock()
		res.Synced++
		synced[entry.Resource] = true
		q.metrics.QueueFlushed("synced")
		return false, nil

	case infra.IsKind(err, infra.KindUnavailable):
		q.recordAttempt(ctx, queueID, err)
		q.metrics.QueueFlushed("deferred")
		return true, errs.Mark(errs.Wrap(err, "flush offline queue"), errs.ErrRemoteUnavailable)

	default:
		q.logger.Warn("queued record rejected by store",
			"queue_id", queueID, "resource", entry.Resource, "error", err.Error())
		q.store.Update(state.RemoveRecord(placeholderID))
		q.mu.Lock()
		_ = q.removeLocked(ctx, queueID)
		q.mu.Unlock()
		res.Rejected++
		q.metrics.QueueFlushed("rejected")
		q.notifier.Error(ctx, fmt.Sprintf("Could not sync %s record saved offline for %s: %s",
			entry.Payload.Type, entry.Payload.ScheduledFor, rejectionReason(err)))
		return false, nil
	}
}

func (q *Queue) recordAttempt(ctx context.Context, queueID string, cause error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	idx := q.indexOf(queueID)
	if idx < 0 {
		return
	}
	q.entries[idx].Attempts++
	q.entries[idx].LastError = cause.Error()
	if q.persist != nil {
		if err := q.persist.SaveQueueEntry(ctx, q.entries[idx]); err != nil {
			q.logger.Warn("failed to persist queue attempt", "queue_id", queueID, "error", err.Error())
		}
	}
}

func (q *Queue) removeLocked(ctx context.Context, queueID string) error {
	idx := q.indexOf(queueID)
	if idx < 0 {
		return errs.Wrapf(errs.ErrNotFound, "queue entry %s", queueID)
	}
	if q.persist != nil {
		if err := q.persist.DeleteQueueEntry(ctx, queueID); err != nil {
			return errs.Wrap(err, "delete queue entry")
		}
	}
	q.entries = append(q.entries[:idx:idx], q.entries[idx+1:]...)
	q.metrics.QueueDepth(len(q.entries))
	return nil
}

func (q *Queue) indexOf(queueID string) int {
	for i, e := range q.entries {
		if e.QueueID == queueID {
			return i
		}
	}
	return -1
}

func rejectionReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindCapacity):
		return "the slot filled up"
	case infra.IsKind(err, infra.KindDuplicateKey):
		return "the guest already has one for that day"
	}
	return "the store rejected it"
}
