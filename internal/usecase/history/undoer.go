//go:generate mockgen -source=undoer.go -destination=../../../tests/mock/history/undoer.go -package=historymock

package history

import (
	"context"
	"fmt"
	"log/slog"

	domhistory "checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/pkg/metrics"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

// UndoCommands reverts history entries by id.
type UndoCommands interface {
	Undo(ctx context.Context, actionID string) (bool, error)
}

// QueueEditor is the part of the offline queue undo needs for records that
// never reached the store.
type QueueEditor interface {
	Discard(ctx context.Context, queueID string) error
	Amend(ctx context.Context, rec service.Record) error
}

type Undoer struct {
	store    *state.Store
	remote   shared.RemoteStore
	queue    QueueEditor
	journal  *Journal
	trigger  shared.SyncTrigger
	notifier shared.Notifier
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewUndoer(
	store *state.Store,
	remote shared.RemoteStore,
	queue QueueEditor,
	journal *Journal,
	trigger shared.SyncTrigger,
	notifier shared.Notifier,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Undoer {
	return &Undoer{
		store:    store,
		remote:   remote,
		queue:    queue,
		journal:  journal,
		trigger:  trigger,
		notifier: notifier,
		clock:    clk,
		metrics:  m,
		logger:   logger,
	}
}

// Undo reverts the named action. It returns false with no error when the entry
// is gone (already undone or evicted), and false with an error when the
// inverse failed; the entry is then kept so the operator can retry.
func (u *Undoer) Undo(ctx context.Context, actionID string) (bool, error) {
	unlock := u.store.Lock("undo:" + actionID)
	defer unlock()

	entry, ok := u.store.History().Find(actionID)
	if !ok {
		return false, nil
	}

	inv, err := domhistory.InverseOf(entry)
	if err != nil {
		return false, err
	}

	if err := u.apply(ctx, inv); err != nil {
		u.metrics.Undo(string(entry.Type), "failed")
		u.notifier.Error(ctx, fmt.Sprintf("Undo failed: %s", entry.Description))
		u.logger.Warn("undo failed", "action_id", actionID, "type", entry.Type, "error", err.Error())
		return false, err
	}

	u.store.Update(state.RemoveHistory(actionID))
	u.journal.Persist(ctx)
	u.metrics.Undo(string(entry.Type), "ok")
	u.trigger.Fire(ctx, inv.Resource)
	u.notifier.Success(ctx, fmt.Sprintf("Undone: %s", entry.Description))
	return true, nil
}

func (u *Undoer) apply(ctx context.Context, inv domhistory.Inverse) error {
	_, unlock := u.store.LockRecord(inv.RecordID)
	defer unlock()

	switch inv.Kind {
	case domhistory.InverseDelete:
		return u.deleteRecord(ctx, inv.RecordID)
	case domhistory.InverseRestore:
		return u.restore(ctx, inv)
	case domhistory.InverseReschedule, domhistory.InverseRevertStatus:
		return u.revert(ctx, inv)
	}
	return errs.Wrapf(domhistory.ErrUnknownAction, "inverse %q", inv.Kind)
}

func (u *Undoer) deleteRecord(ctx context.Context, recordID string) error {
	id := u.store.ResolveID(recordID)

	if service.IsPlaceholderID(id) {
		rec, ok := u.store.Record(id)
		if !ok {
			return nil
		}
		err := u.queue.Discard(ctx, rec.QueueID)
		switch {
		case err == nil:
			u.store.Update(state.RemoveRecord(id))
			return nil
		case errs.Is(err, errs.ErrNotFound):
			// flushed while we waited; the alias now points at the stored row
			id = u.store.ResolveID(recordID)
			if service.IsPlaceholderID(id) {
				u.store.Update(state.RemoveRecord(id))
				return nil
			}
		default:
			return err
		}
	}

	if err := u.remote.DeleteRecord(ctx, id); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return shared.ClassifyRemoteErr(err, "delete record")
	}
	u.store.Update(state.RemoveRecord(id))
	return nil
}

func (u *Undoer) restore(ctx context.Context, inv domhistory.Inverse) error {
	restored := inv.Before.Clone()
	restored.ID = u.store.ResolveID(restored.ID)

	current, found := u.store.Record(restored.ID)
	if found {
		if err := checkUnchanged(current, inv); err != nil {
			return err
		}
	}
	if err := u.admit(restored, current, found); err != nil {
		return err
	}

	if service.IsPlaceholderID(restored.ID) {
		if found {
			restored.QueueID = current.QueueID
			restored.PendingSync = true
		}
		if err := u.queue.Amend(ctx, restored); err != nil {
			return err
		}
		u.store.Update(state.PutRecord(restored))
		return nil
	}

	restored.PendingSync = false
	restored.QueueID = ""
	stored, err := u.remote.UpsertRecord(ctx, restored)
	if err != nil {
		return shared.ClassifyRemoteErr(err, "restore record")
	}
	u.store.Update(state.PutRecord(stored))
	return nil
}

func (u *Undoer) revert(ctx context.Context, inv domhistory.Inverse) error {
	id := u.store.ResolveID(inv.RecordID)
	current, ok := u.store.Record(id)
	if !ok {
		return errs.Wrapf(errs.ErrNotFound, "record %s", id)
	}
	if err := checkUnchanged(current, inv); err != nil {
		return err
	}

	next := current.Clone()
	next.Status = inv.Status
	next.LastUpdated = u.clock.Now()
	if inv.Kind == domhistory.InverseReschedule {
		next.SlotKey = nil
		if inv.Slot != nil {
			prev := *inv.Slot
			next.SlotKey = &prev
		}
	}
	if inv.Before != nil {
		next.CompletedAt = nil
		if inv.Before.CompletedAt != nil {
			completed := *inv.Before.CompletedAt
			next.CompletedAt = &completed
		}
	}
	if err := u.admit(next, current, true); err != nil {
		return err
	}

	if next.IsPlaceholder() {
		if err := u.queue.Amend(ctx, next); err != nil {
			return err
		}
		u.store.Update(state.PutRecord(next))
		return nil
	}

	stored, err := u.remote.UpdateRecord(ctx, next)
	if err != nil {
		return shared.ClassifyRemoteErr(err, "revert record")
	}
	u.store.Update(state.PutRecord(stored))
	return nil
}

// checkUnchanged refuses an undo once the record has moved on from the state
// the action left it in; undoing it then would overwrite the later change.
func checkUnchanged(current service.Record, inv domhistory.Inverse) error {
	if inv.Expect != "" && current.Status != inv.Expect {
		return errs.Wrapf(errs.ErrStaleAction, "record %s is %s, action left it %s", current.ID, current.Status, inv.Expect)
	}
	if inv.ExpectSlot != nil && current.Slot() != *inv.ExpectSlot {
		return errs.Wrapf(errs.ErrStaleAction, "record %s is at %s, action left it at %s", current.ID, current.Slot(), *inv.ExpectSlot)
	}
	return nil
}

// admit runs the creation checks on a record an undo is about to make active
// again: one active record per guest, type and day, and room in its slot.
// current is the record being replaced, if any; its own seat is not counted.
func (u *Undoer) admit(next, current service.Record, hasCurrent bool) error {
	if !next.IsActive() {
		return nil
	}

	if next.Type.DailyUnique() {
		others := make([]service.Record, 0)
		for _, rec := range u.store.Records() {
			if rec.ID != next.ID {
				others = append(others, rec)
			}
		}
		if existing, ok := service.FindActive(others, next.SubjectID, next.Type, next.ScheduledFor); ok {
			return errs.Wrapf(errs.ErrAlreadyBooked, "%s on %s (record %s)", next.Type, next.ScheduledFor, existing.ID)
		}
	}

	if next.OccupiesSlot() {
		ledger := u.store.Ledger()
		count := ledger.Count(next.Type, next.ScheduledFor, next.Slot())
		if hasCurrent && current.OccupiesSlot() && current.ScheduledFor == next.ScheduledFor && current.Slot() == next.Slot() {
			count--
		}
		if !slot.HasRoom(count, ledger.Capacity(next.Type)) {
			return errs.Wrapf(errs.ErrSlotFull, "no room in %s on %s", next.Slot(), next.ScheduledFor)
		}
	}
	return nil
}
