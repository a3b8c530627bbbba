package commands

import (
	"context"
	"fmt"
	"strings"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

func (e *Engine) BookShower(ctx context.Context, in BookSlotInput) (Result, error) {
	slotKey := strings.TrimSpace(in.SlotKey)
	if slotKey == "" {
		return Result{}, errs.Wrap(errs.ErrInvalidInput, "slot is required")
	}
	rec := e.newRecord(service.TypeShower, "", in.SubjectID, e.dateOr(in.DateOverride))
	rec.SlotKey = &slotKey
	return e.create(ctx, rec, fmt.Sprintf("Shower booked for %s on %s", slotKey, rec.ScheduledFor))
}

// JoinShowerWaitlist skips capacity but still allows one shower per day.
func (e *Engine) JoinShowerWaitlist(ctx context.Context, in WaitlistInput) (Result, error) {
	rec := e.newRecord(service.TypeShower, "", in.SubjectID, e.dateOr(in.DateOverride))
	rec.Status = service.StatusWaitlisted
	return e.create(ctx, rec, fmt.Sprintf("Added to shower waitlist on %s", rec.ScheduledFor))
}

func (e *Engine) BookLaundry(ctx context.Context, in LaundryInput) (Result, error) {
	if !in.Mode.Valid() {
		return Result{}, errs.Wrapf(errs.ErrInvalidInput, "laundry mode %q", in.Mode)
	}
	rec := e.newRecord(service.TypeLaundry, in.Mode, in.SubjectID, e.dateOr(in.DateOverride))
	rec.BagNumber = strings.TrimSpace(in.BagNumber)

	desc := fmt.Sprintf("Off-site laundry logged on %s", rec.ScheduledFor)
	if in.Mode == service.LaundryOnsite {
		slotKey := strings.TrimSpace(in.SlotKey)
		if slotKey == "" {
			return Result{}, errs.Wrap(errs.ErrInvalidInput, "on-site laundry needs a slot")
		}
		rec.SlotKey = &slotKey
		desc = fmt.Sprintf("Laundry booked for %s on %s", slotKey, rec.ScheduledFor)
	}
	return e.create(ctx, rec, desc)
}

func (e *Engine) LogBicycleRepair(ctx context.Context, in RepairInput) (Result, error) {
	rec := e.newRecord(service.TypeBicycle, "", in.SubjectID, e.dateOr(in.DateOverride))
	rec.Note = strings.TrimSpace(in.Note)
	return e.create(ctx, rec, fmt.Sprintf("Bicycle repair logged on %s", rec.ScheduledFor))
}

func (e *Engine) LogService(ctx context.Context, in LogInput) (Result, error) {
	if !in.Type.IsLog() {
		return Result{}, errs.Wrapf(errs.ErrInvalidInput, "%q is not a loggable service", in.Type)
	}
	if in.Quantity < 0 {
		return Result{}, errs.Wrap(errs.ErrInvalidInput, "quantity must not be negative")
	}
	rec := e.newRecord(in.Type, "", in.SubjectID, e.dateOr(in.DateOverride))
	rec.Quantity = in.Quantity
	if rec.Quantity == 0 {
		rec.Quantity = 1
	}
	rec.Note = strings.TrimSpace(in.Note)
	return e.create(ctx, rec, fmt.Sprintf("%s logged (x%d) on %s", logNoun(in.Type), rec.Quantity, rec.ScheduledFor))
}

func (e *Engine) newRecord(t service.Type, mode service.LaundryMode, subjectID, date string) service.Record {
	now := e.clock.Now()
	return service.Record{
		SubjectID:    strings.TrimSpace(subjectID),
		Type:         t,
		LaundryMode:  mode,
		ScheduledFor: date,
		Status:       service.InitialStatus(t, mode),
		CreatedAt:    now,
		LastUpdated:  now,
	}
}

// create runs the booking sequence: local capacity, daily uniqueness,
// eligibility, authoritative recount, then write or queue.
// Nothing is applied locally until one of the last two steps succeeds.
func (e *Engine) create(ctx context.Context, rec service.Record, description string) (Result, error) {
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}

	if rec.Type.DailyUnique() {
		unlock := e.store.Lock(strings.Join([]string{"create", rec.SubjectID, string(rec.Type), rec.ScheduledFor}, "|"))
		defer unlock()
	}

	slotted := rec.OccupiesSlot()
	localCount := 0
	if slotted {
		ledger := e.store.Ledger()
		localCount = ledger.Count(rec.Type, rec.ScheduledFor, rec.Slot())
		if !slot.HasRoom(localCount, ledger.Capacity(rec.Type)) {
			e.metrics.SlotFull(string(rec.Type), "local")
			return Result{}, errs.Wrapf(errs.ErrSlotFull, "%s %s on %s", rec.Type, rec.Slot(), rec.ScheduledFor)
		}
	}

	if rec.Type.DailyUnique() {
		if existing, ok := service.FindActive(e.store.Records(), rec.SubjectID, rec.Type, rec.ScheduledFor); ok {
			return Result{}, errs.Wrapf(errs.ErrAlreadyBooked, "%s on %s (record %s)", rec.Type, rec.ScheduledFor, existing.ID)
		}
	}

	if err := e.guard.CheckEligible(ctx, rec.SubjectID, rec.Type); err != nil {
		return Result{}, err
	}

	online := e.liveness.Online()
	if slotted && online {
		count, err := e.revalidate(ctx, rec, localCount)
		if err != nil {
			return Result{}, err
		}
		if !slot.HasRoom(count, e.store.Capacities().For(rec.Type)) {
			e.metrics.SlotFull(string(rec.Type), "remote")
			return Result{}, errs.SlotJustFilled(rec.Slot())
		}
	}

	if !online {
		return e.enqueue(ctx, rec, description)
	}

	committed, err := e.remote.InsertRecord(ctx, rec)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindUnavailable):
			e.logger.Info("store unreachable during insert, queueing", "type", rec.Type, "subject_id", rec.SubjectID)
			return e.enqueue(ctx, rec, description)
		case infra.IsKind(err, infra.KindCapacity):
			e.metrics.SlotFull(string(rec.Type), "store")
			return Result{}, errs.SlotJustFilled(rec.Slot())
		case infra.IsKind(err, infra.KindDuplicateKey):
			return Result{}, errs.Wrapf(errs.ErrAlreadyBooked, "%s on %s", rec.Type, rec.ScheduledFor)
		default:
			return Result{}, errs.Mark(errs.Wrap(err, "insert record"), errs.ErrRemoteRejected)
		}
	}

	entry := e.creationEntry(ctx, committed, description)
	e.store.Update(state.InsertRecord(committed), state.RecordHistory(entry))
	e.persistHistory(ctx)
	e.metrics.RecordCreated(string(committed.Type), "committed")
	e.trigger.Fire(ctx, committed.Type.Resource())
	e.notifier.Success(ctx, description)

	return Result{Record: committed, HistoryID: entry.ID}, nil
}

// revalidate asks the store for the live count. An unreachable store falls
// back to the local count; other errors do too unless strict mode is on.
func (e *Engine) revalidate(ctx context.Context, rec service.Record, localCount int) (int, error) {
	count, err := e.remote.CountActiveInSlot(ctx, rec.Type, rec.ScheduledFor, rec.Slot())
	if err == nil {
		return count, nil
	}
	if infra.IsKind(err, infra.KindUnavailable) {
		return localCount, nil
	}
	if e.cfg.StrictRevalidation {
		return 0, errs.Mark(errs.Wrap(err, "revalidate slot"), errs.ErrRemoteRejected)
	}
	e.logger.Warn("slot recount failed, using local count",
		"type", rec.Type, "slot", rec.Slot(), "date", rec.ScheduledFor, "error", err.Error())
	return localCount, nil
}

func (e *Engine) enqueue(ctx context.Context, rec service.Record, description string) (Result, error) {
	rec.ID = service.NewPlaceholderID()
	queueID, err := e.queue.Enqueue(ctx, rec.Type.Resource(), rec)
	if err != nil {
		return Result{}, errs.Wrap(err, "queue offline record")
	}
	rec.PendingSync = true
	rec.QueueID = queueID

	entry := e.creationEntry(ctx, rec, description)
	e.store.Update(state.RecordHistory(entry))
	e.persistHistory(ctx)
	e.metrics.RecordCreated(string(rec.Type), "queued")
	e.notifier.Warning(ctx, description+" (saved offline, will sync when the connection returns)")

	return Result{Record: rec, Queued: true, HistoryID: entry.ID}, nil
}

func (e *Engine) creationEntry(ctx context.Context, rec service.Record, description string) history.Entry {
	after := rec.Clone()
	return history.NewEntry(
		history.CreationAction(rec.Type, rec.Status),
		e.clock.Now(),
		history.Payload{
			RecordID:  rec.ID,
			Resource:  rec.Type.Resource(),
			After:     &after,
			NewSlot:   after.SlotKey,
			NewStatus: rec.Status,
		},
		description,
		shared.ActorFrom(ctx),
	)
}

func logNoun(t service.Type) string {
	switch t {
	case service.TypeMeal:
		return "Meal"
	case service.TypeDonation:
		return "Donation"
	case service.TypeItem:
		return "Item"
	}
	return string(t)
}
