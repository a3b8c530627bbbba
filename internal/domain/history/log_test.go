//go:build unit

package history_test

import (
	"fmt"
	"testing"
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(i int) history.Entry {
	return history.NewEntry(history.ActionMealLogged, builder.BaseTime.Add(time.Duration(i)*time.Minute),
		history.Payload{RecordID: fmt.Sprintf("rec-%d", i)}, "meal", "")
}

func TestLog_RecordTrimsToLimit(t *testing.T) {
	log := history.NewLog(history.DefaultLimit)
	var first history.Entry
	var evicted []history.Entry

	for i := 0; i < history.DefaultLimit+1; i++ {
		e := entryAt(i)
		if i == 0 {
			first = e
		}
		log, evicted = log.Record(e)
	}

	require.Equal(t, history.DefaultLimit, log.Len())
	require.Len(t, evicted, 1)
	assert.Equal(t, first.ID, evicted[0].ID)

	entries := log.Entries()
	assert.Equal(t, "rec-50", entries[0].Data.RecordID, "newest first")
	_, ok := log.Find(first.ID)
	assert.False(t, ok)
}

func TestLog_IsAValue(t *testing.T) {
	base, _ := history.NewLog(3).Record(entryAt(1))
	grown, _ := base.Record(entryAt(2))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())

	target := grown.Entries()[1]
	shrunk, ok := grown.Remove(target.ID)
	require.True(t, ok)
	assert.Equal(t, 1, shrunk.Len())
	assert.Equal(t, 2, grown.Len())

	_, ok = shrunk.Remove(target.ID)
	assert.False(t, ok)
}

func TestRestoreLog(t *testing.T) {
	entries := []history.Entry{entryAt(3), entryAt(2), entryAt(1)}
	log := history.RestoreLog(2, entries)

	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 2, log.Limit())
	assert.Equal(t, entries[0].ID, log.Entries()[0].ID)
}

func TestInverseOf(t *testing.T) {
	rec := builder.NewRecordBuilder().BuildDomain()
	prev := "08:00"
	next := "09:00"

	tests := []struct {
		name     string
		entry    history.Entry
		wantKind history.InverseKind
		wantErr  bool
	}{
		{
			name:     "booking deletes",
			entry:    history.Entry{Type: history.ActionShowerBooked, Data: history.Payload{RecordID: rec.ID}},
			wantKind: history.InverseDelete,
		},
		{
			name:     "item given deletes",
			entry:    history.Entry{Type: history.ActionItemGiven, Data: history.Payload{RecordID: "x"}},
			wantKind: history.InverseDelete,
		},
		{
			name:     "cancellation restores snapshot",
			entry:    history.Entry{Type: history.ActionRecordCancelled, Data: history.Payload{RecordID: rec.ID, Before: &rec}},
			wantKind: history.InverseRestore,
		},
		{
			name:    "cancellation without snapshot",
			entry:   history.Entry{Type: history.ActionRecordCancelled, Data: history.Payload{RecordID: rec.ID}},
			wantErr: true,
		},
		{
			name: "reschedule writes previous slot",
			entry: history.Entry{Type: history.ActionShowerRescheduled, Data: history.Payload{
				RecordID: rec.ID, Before: &rec, PreviousSlot: &prev, NewSlot: &next, PreviousStatus: service.StatusAwaiting,
			}},
			wantKind: history.InverseReschedule,
		},
		{
			name: "status change reverts status",
			entry: history.Entry{Type: history.ActionStatusChanged, Data: history.Payload{
				RecordID: rec.ID, PreviousStatus: service.StatusWaitlisted, NewStatus: service.StatusDone,
			}},
			wantKind: history.InverseRevertStatus,
		},
		{
			name:    "unknown type",
			entry:   history.Entry{Type: "TELEPORTED"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := history.InverseOf(tt.entry)
			if tt.wantErr {
				require.ErrorIs(t, err, history.ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, inv.Kind)
			assert.Equal(t, tt.entry.Data.RecordID, inv.RecordID)
		})
	}

	inv, err := history.InverseOf(history.Entry{Type: history.ActionShowerRescheduled, Data: history.Payload{
		PreviousSlot: &prev, NewSlot: &next, PreviousStatus: service.StatusAwaiting, NewStatus: service.StatusAwaiting,
	}})
	require.NoError(t, err)
	assert.Equal(t, "08:00", *inv.Slot)
	assert.Equal(t, service.StatusAwaiting, inv.Status)
	assert.Equal(t, service.StatusAwaiting, inv.Expect)
	assert.Equal(t, "09:00", *inv.ExpectSlot)

	inv, err = history.InverseOf(history.Entry{Type: history.ActionStatusChanged, Data: history.Payload{
		PreviousStatus: service.StatusWaiting, NewStatus: service.StatusWasher,
	}})
	require.NoError(t, err)
	assert.Equal(t, service.StatusWaiting, inv.Status)
	assert.Equal(t, service.StatusWasher, inv.Expect)
}

func TestCreationAction(t *testing.T) {
	assert.Equal(t, history.ActionShowerWaitlisted, history.CreationAction(service.TypeShower, service.StatusWaitlisted))
	assert.Equal(t, history.ActionShowerBooked, history.CreationAction(service.TypeShower, service.StatusAwaiting))
	assert.Equal(t, history.ActionDonationLogged, history.CreationAction(service.TypeDonation, service.StatusDone))
}
