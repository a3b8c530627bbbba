package commands

import (
	"context"
	"fmt"
	"strings"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

const revertedNotice = "Changes were reverted"

// edit describes one in-place record mutation.
type edit struct {
	op    string
	apply func(rec *service.Record) error
	entry func(ctx context.Context, before, after service.Record) *history.Entry
}

func (e *Engine) UpdateStatus(ctx context.Context, id string, status service.Status) (service.Record, error) {
	if status == service.StatusCancelled {
		return e.CancelRecord(ctx, id)
	}
	return e.edit(ctx, id, edit{
		op: "update_status",
		apply: func(rec *service.Record) error {
			return rec.ApplyStatus(status, e.clock.Now())
		},
		entry: func(ctx context.Context, before, after service.Record) *history.Entry {
			ent := history.NewEntry(history.ActionStatusChanged, e.clock.Now(), history.Payload{
				RecordID:       after.ID,
				Resource:       after.Type.Resource(),
				Before:         &before,
				PreviousStatus: before.Status,
				NewStatus:      after.Status,
			}, fmt.Sprintf("%s marked %s", titleType(after.Type), statusLabel(after.Status)), shared.ActorFrom(ctx))
			return &ent
		},
	})
}

func (e *Engine) CancelRecord(ctx context.Context, id string) (service.Record, error) {
	return e.edit(ctx, id, edit{
		op: "cancel",
		apply: func(rec *service.Record) error {
			return rec.ApplyStatus(service.StatusCancelled, e.clock.Now())
		},
		entry: func(ctx context.Context, before, after service.Record) *history.Entry {
			ent := history.NewEntry(history.ActionRecordCancelled, e.clock.Now(), history.Payload{
				RecordID:       after.ID,
				Resource:       after.Type.Resource(),
				Before:         &before,
				PreviousSlot:   before.SlotKey,
				PreviousStatus: before.Status,
				NewStatus:      after.Status,
			}, fmt.Sprintf("%s cancelled", titleType(after.Type)), shared.ActorFrom(ctx))
			return &ent
		},
	})
}

// RescheduleShower moves an awaiting shower to another slot on the same day.
func (e *Engine) RescheduleShower(ctx context.Context, id, slotKey string) (service.Record, error) {
	slotKey = strings.TrimSpace(slotKey)
	if slotKey == "" {
		return service.Record{}, errs.Wrap(errs.ErrInvalidInput, "slot is required")
	}
	return e.edit(ctx, id, edit{
		op: "reschedule",
		apply: func(rec *service.Record) error {
			if rec.Type != service.TypeShower || rec.Status != service.StatusAwaiting {
				return errs.Wrapf(errs.ErrInvalidTransition, "only awaiting showers can be rescheduled (record is %s %s)", rec.Type, rec.Status)
			}
			if rec.Slot() == slotKey {
				return nil
			}
			ledger := e.store.Ledger()
			if !ledger.HasAvailability(rec.Type, rec.ScheduledFor, slotKey) {
				e.metrics.SlotFull(string(rec.Type), "local")
				return errs.Wrapf(errs.ErrSlotFull, "shower %s on %s", slotKey, rec.ScheduledFor)
			}
			next := slotKey
			rec.SlotKey = &next
			rec.LastUpdated = e.clock.Now()
			return nil
		},
		entry: func(ctx context.Context, before, after service.Record) *history.Entry {
			if before.Slot() == after.Slot() {
				return nil
			}
			ent := history.NewEntry(history.ActionShowerRescheduled, e.clock.Now(), history.Payload{
				RecordID:       after.ID,
				Resource:       after.Type.Resource(),
				Before:         &before,
				PreviousSlot:   before.SlotKey,
				NewSlot:        after.SlotKey,
				PreviousStatus: before.Status,
				NewStatus:      after.Status,
			}, fmt.Sprintf("Shower moved from %s to %s", before.Slot(), after.Slot()), shared.ActorFrom(ctx))
			return &ent
		},
	})
}

func (e *Engine) UpdateBagNumber(ctx context.Context, id, bagNumber string) (service.Record, error) {
	bagNumber = strings.TrimSpace(bagNumber)
	return e.edit(ctx, id, edit{
		op: "update_bag_number",
		apply: func(rec *service.Record) error {
			if rec.Type != service.TypeLaundry {
				return errs.Wrapf(errs.ErrInvalidInput, "bag numbers only apply to laundry (record is %s)", rec.Type)
			}
			rec.BagNumber = bagNumber
			rec.LastUpdated = e.clock.Now()
			return nil
		},
	})
}

// edit is the snapshot-rollback path: copy, apply locally, confirm remotely,
// and on failure put the copy back exactly as it was.
func (e *Engine) edit(ctx context.Context, id string, ed edit) (service.Record, error) {
	id, unlock := e.store.LockRecord(id)
	defer unlock()

	current, ok := e.store.Record(id)
	if !ok {
		return service.Record{}, errs.Wrapf(errs.ErrNotFound, "record %s", id)
	}

	previous := current.Clone()
	next := current.Clone()
	if err := ed.apply(&next); err != nil {
		return service.Record{}, err
	}

	e.store.Update(state.PutRecord(next))

	if next.IsPlaceholder() {
		// never reached the store: the local value is final, and the queued
		// insert must carry it
		if err := e.queue.Amend(ctx, next); err != nil {
			e.store.Update(state.PutRecord(previous))
			return service.Record{}, errs.Wrap(err, "amend queued record")
		}
		e.recordEdit(ctx, ed, previous, next)
		return next, nil
	}

	stored, err := e.remote.UpdateRecord(ctx, next)
	if err != nil {
		e.store.Update(state.PutRecord(previous))
		e.metrics.Rollback(ed.op)
		e.notifier.Warning(ctx, fmt.Sprintf("%s: %s was not saved", revertedNotice, titleType(previous.Type)))
		e.logger.Warn("edit rolled back", "op", ed.op, "record_id", previous.ID, "error", err.Error())
		return service.Record{}, errs.Mark(shared.ClassifyRemoteErr(err, ed.op), errs.ErrRolledBack)
	}

	e.store.Update(state.PutRecord(stored))
	e.recordEdit(ctx, ed, previous, stored)
	e.trigger.Fire(ctx, stored.Type.Resource())
	return stored, nil
}

func (e *Engine) recordEdit(ctx context.Context, ed edit, before, after service.Record) {
	if ed.entry == nil {
		return
	}
	ent := ed.entry(ctx, before.Clone(), after.Clone())
	if ent == nil {
		return
	}
	e.store.Update(state.RecordHistory(*ent))
	e.persistHistory(ctx)
}

// UpdateSubject edits a guest profile or restriction with the same
// snapshot-rollback rules as record edits.
func (e *Engine) UpdateSubject(ctx context.Context, patch guest.Patch) (guest.Subject, error) {
	if patch.SubjectID == "" {
		return guest.Subject{}, errs.Wrap(errs.ErrInvalidInput, "subject id is required")
	}
	if patch.Empty() {
		return guest.Subject{}, errs.Wrap(errs.ErrInvalidInput, "nothing to update")
	}

	unlock := e.store.Lock("subject:" + patch.SubjectID)
	defer unlock()

	current, ok := e.store.Subject(patch.SubjectID)
	if !ok {
		fetched, err := e.remote.GetSubject(ctx, patch.SubjectID)
		if err != nil {
			return guest.Subject{}, shared.ClassifyRemoteErr(err, "load subject")
		}
		e.store.Update(state.PutSubject(fetched))
		current = fetched
	}

	previous := current.Clone()
	next := current.Apply(patch, e.clock.Now())
	e.store.Update(state.PutSubject(next))

	stored, err := e.remote.UpdateSubject(ctx, next)
	if err != nil {
		e.store.Update(state.PutSubject(previous))
		e.metrics.Rollback("update_subject")
		e.notifier.Warning(ctx, fmt.Sprintf("%s: guest profile was not saved", revertedNotice))
		e.logger.Warn("subject edit rolled back", "subject_id", patch.SubjectID, "error", err.Error())
		return guest.Subject{}, errs.Mark(shared.ClassifyRemoteErr(err, "update subject"), errs.ErrRolledBack)
	}

	e.store.Update(state.PutSubject(stored))
	e.trigger.Fire(ctx, service.ResourceSubjects)
	return stored, nil
}

func titleType(t service.Type) string {
	switch t {
	case service.TypeShower:
		return "Shower"
	case service.TypeLaundry:
		return "Laundry"
	case service.TypeBicycle:
		return "Bicycle repair"
	}
	return logNoun(t)
}

func statusLabel(s service.Status) string {
	return strings.ReplaceAll(string(s), "_", " ")
}
