//go:build unit

package history_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domhistory "checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/history"
	"checkin-core/internal/usecase/state"
	"checkin-core/tests/common/builder"
	sharedmock "checkin-core/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func entryFor(rec service.Record) domhistory.Entry {
	after := rec.Clone()
	return domhistory.NewEntry(domhistory.ActionShowerBooked, builder.BaseTime, domhistory.Payload{
		RecordID: rec.ID,
		Resource: service.ResourceShowers,
		After:    &after,
	}, "Shower booked", "staff-1")
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("persist writes newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persist := sharedmock.NewMockHistoryStore(ctrl)
		store := state.NewStore(slot.Capacities{}, 2)
		j := history.NewJournal(store, persist, logger)

		first := entryFor(builder.NewRecordBuilder().BuildDomain())
		second := entryFor(builder.NewRecordBuilder().BuildDomain())
		third := entryFor(builder.NewRecordBuilder().BuildDomain())
		store.Update(state.RecordHistory(first), state.RecordHistory(second), state.RecordHistory(third))

		persist.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []domhistory.Entry) error {
				require.Len(t, entries, 2)
				assert.Equal(t, third.ID, entries[0].ID)
				assert.Equal(t, second.ID, entries[1].ID)
				return nil
			})
		j.Persist(ctx)
	})

	t.Run("persist failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persist := sharedmock.NewMockHistoryStore(ctrl)
		j := history.NewJournal(state.NewStore(slot.Capacities{}, 5), persist, logger)
		persist.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(errs.New("disk full"))

		assert.NotPanics(t, func() { j.Persist(ctx) })
	})

	t.Run("restore replaces the log and keeps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persist := sharedmock.NewMockHistoryStore(ctrl)
		store := state.NewStore(slot.Capacities{}, 2)
		j := history.NewJournal(store, persist, logger)

		saved := []domhistory.Entry{
			entryFor(builder.NewRecordBuilder().BuildDomain()),
			entryFor(builder.NewRecordBuilder().BuildDomain()),
			entryFor(builder.NewRecordBuilder().BuildDomain()),
		}
		persist.EXPECT().LoadHistory(gomock.Any()).Return(saved, nil)

		require.NoError(t, j.Restore(ctx))
		log := store.History()
		assert.Equal(t, 2, log.Len())
		_, ok := log.Find(saved[0].ID)
		assert.True(t, ok)
		_, ok = log.Find(saved[2].ID)
		assert.False(t, ok)
	})

	t.Run("nil journal is a no-op", func(t *testing.T) {
		var j *history.Journal
		assert.NotPanics(t, func() { j.Persist(ctx) })
		assert.NoError(t, j.Restore(ctx))
	})
}
