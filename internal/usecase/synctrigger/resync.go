package synctrigger

import (
	"context"
	"log/slog"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

// Resyncer pulls the authoritative rows for a day and merges them into local
// state. This is where a client that lost a race sees the winner's booking.
type Resyncer struct {
	store   *state.Store
	remote  shared.RemoteStore
	trigger *Trigger
	logger  *slog.Logger
}

func NewResyncer(store *state.Store, remote shared.RemoteStore, trigger *Trigger, logger *slog.Logger) *Resyncer {
	return &Resyncer{store: store, remote: remote, trigger: trigger, logger: logger}
}

func (r *Resyncer) Resync(ctx context.Context, date string) error {
	records, err := r.remote.ListRecords(ctx, date)
	if err != nil {
		return errs.Wrapf(err, "list records for %s", date)
	}
	r.store.Update(state.MergeRemote(date, records))
	for _, t := range service.AllTypes {
		r.trigger.Touch(t.Resource())
	}
	r.logger.Debug("resynced records", "date", date, "records", len(records))
	return nil
}

func (r *Resyncer) ForgetSubjects() {
	r.store.Update(state.ClearSubjects())
}
