package history

import (
	"context"
	"log/slog"
	"sync"

	domhistory "checkin-core/internal/domain/history"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

// Journal mirrors the in-memory action history into the local cache so undo
// survives a restart.
type Journal struct {
	mu      sync.Mutex
	store   *state.Store
	persist shared.HistoryStore
	logger  *slog.Logger
}

func NewJournal(store *state.Store, persist shared.HistoryStore, logger *slog.Logger) *Journal {
	return &Journal{store: store, persist: persist, logger: logger}
}

// Persist writes the current history. Failures are logged: history is a
// convenience and must never fail the mutation that produced it.
func (j *Journal) Persist(ctx context.Context) {
	if j == nil || j.persist == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := j.store.History().Entries()
	if err := j.persist.SaveHistory(ctx, entries); err != nil {
		j.logger.Warn("failed to persist action history", "entries", len(entries), "error", err.Error())
	}
}

// Restore loads persisted entries into the store, replacing what is there.
func (j *Journal) Restore(ctx context.Context) error {
	if j == nil || j.persist == nil {
		return nil
	}
	entries, err := j.persist.LoadHistory(ctx)
	if err != nil {
		return errs.Wrap(err, "load action history")
	}
	limit := j.store.History().Limit()
	j.store.Update(state.ReplaceHistory(domhistory.RestoreLog(limit, entries)))
	j.logger.Info("action history restored", "entries", len(entries))
	return nil
}
