//go:build unit

package state_test

import (
	"sync"
	"testing"
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/usecase/state"
	"checkin-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *state.Store {
	return state.NewStore(slot.Capacities{}, history.DefaultLimit)
}

func TestStore_InsertRecordGuardsDuplicates(t *testing.T) {
	store := newStore()
	rec := builder.NewRecordBuilder().BuildDomain()

	store.Update(state.InsertRecord(rec))
	store.Update(state.InsertRecord(rec))

	dup := builder.NewRecordBuilder().WithSubject(rec.SubjectID).BuildDomain()
	store.Update(state.InsertRecord(dup))

	assert.Len(t, store.Records(), 1)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	store := newStore()
	rec := builder.NewRecordBuilder().BuildDomain()
	store.Update(state.PutRecord(rec))

	got, ok := store.Record(rec.ID)
	require.True(t, ok)
	*got.SlotKey = "11:00"
	got.Status = service.StatusCancelled

	again, _ := store.Record(rec.ID)
	assert.Empty(t, cmp.Diff(rec, again))
}

func TestStore_TransformsDoNotLeakIntoEarlierSnapshots(t *testing.T) {
	store := newStore()
	a := builder.NewRecordBuilder().WithSlot("08:00").BuildDomain()
	before := store.Update(state.PutRecord(a))

	b := builder.NewRecordBuilder().WithSlot("09:00").BuildDomain()
	store.Update(state.PutRecord(b), state.RemoveRecord(a.ID))

	assert.Len(t, before.Records, 1)
	assert.Equal(t, a.ID, before.Records[0].ID)
	assert.Len(t, store.Records(), 1)
	assert.Equal(t, b.ID, store.Records()[0].ID)
}

func TestStore_Reconcile(t *testing.T) {
	t.Run("swaps placeholder for committed row", func(t *testing.T) {
		store := newStore()
		placeholder := builder.NewRecordBuilder().Pending().BuildDomain()
		store.Update(state.PutRecord(placeholder))

		committed := placeholder.Clone()
		committed.ID = "remote-1"
		store.Update(state.Reconcile(placeholder.ID, committed))

		records := store.Records()
		require.Len(t, records, 1)
		assert.Equal(t, "remote-1", records[0].ID)
		assert.False(t, records[0].PendingSync)
		assert.Empty(t, records[0].QueueID)
		assert.Equal(t, "remote-1", store.ResolveID(placeholder.ID))

		byAlias, ok := store.Record(placeholder.ID)
		require.True(t, ok)
		assert.Equal(t, "remote-1", byAlias.ID)
	})

	t.Run("drops placeholder when realtime row already arrived", func(t *testing.T) {
		store := newStore()
		placeholder := builder.NewRecordBuilder().Pending().BuildDomain()
		committed := placeholder.Clone()
		committed.ID = "remote-1"
		committed.PendingSync = false
		committed.QueueID = ""

		store.Update(state.PutRecord(placeholder), state.PutRecord(committed))
		store.Update(state.Reconcile(placeholder.ID, committed))

		records := store.Records()
		require.Len(t, records, 1)
		assert.Equal(t, "remote-1", records[0].ID)
		assert.False(t, records[0].PendingSync)
	})
}

func TestStore_MergeRemoteKeepsPlaceholders(t *testing.T) {
	store := newStore()
	stale := builder.NewRecordBuilder().WithSlot("08:00").BuildDomain()
	other := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) { b.ScheduledFor = "2026-03-15" }).BuildDomain()
	pending := builder.NewRecordBuilder().WithSlot("10:00").Pending().BuildDomain()
	store.Update(state.PutRecord(stale), state.PutRecord(other), state.PutRecord(pending))

	fresh := builder.NewRecordBuilder().WithSlot("09:00").BuildDomain()
	store.Update(state.MergeRemote(builder.BaseDate, []service.Record{fresh}))

	ids := map[string]bool{}
	for _, r := range store.Records() {
		ids[r.ID] = true
	}
	assert.Equal(t, map[string]bool{other.ID: true, fresh.ID: true, pending.ID: true}, ids)
}

func TestStore_ConcurrentUpdatesOnDifferentRecords(t *testing.T) {
	store := newStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(state.PutRecord(builder.NewRecordBuilder().BuildDomain()))
		}()
	}
	wg.Wait()

	assert.Len(t, store.Records(), 50)
}

func TestStore_History(t *testing.T) {
	store := state.NewStore(slot.Capacities{}, 2)
	for i := 0; i < 3; i++ {
		store.Update(state.RecordHistory(history.NewEntry(history.ActionMealLogged, builder.BaseTime, history.Payload{}, "meal", "")))
	}
	assert.Equal(t, 2, store.History().Len())

	id := store.History().Entries()[0].ID
	store.Update(state.RemoveHistory(id))
	_, ok := store.History().Find(id)
	assert.False(t, ok)
}

func TestStore_LockSerializesSameKey(t *testing.T) {
	store := newStore()
	unlock := store.Lock("rec-1")

	acquired := make(chan struct{})
	go func() {
		release := store.Lock("rec-1")
		close(acquired)
		release()
	}()

	other := store.Lock("rec-2")
	other()

	select {
	case <-acquired:
		t.Fatal("second lock on the same key acquired while held")
	default:
	}

	unlock()
	<-acquired
}

func TestStore_LockRecordFollowsReconciledPlaceholder(t *testing.T) {
	store := newStore()
	pending := builder.NewRecordBuilder().Pending().BuildDomain()
	store.Update(state.InsertRecord(pending))

	// a flush holds the placeholder while it commits
	flushUnlock := store.Lock(pending.ID)

	type locked struct {
		id     string
		unlock func()
	}
	got := make(chan locked)
	go func() {
		id, unlock := store.LockRecord(pending.ID)
		got <- locked{id: id, unlock: unlock}
	}()

	committed := pending.Clone()
	committed.ID = "rec-committed"
	committed.PendingSync = false
	committed.QueueID = ""
	store.Update(state.Reconcile(pending.ID, committed))
	flushUnlock()

	held := <-got
	assert.Equal(t, committed.ID, held.id)

	acquired := make(chan struct{})
	go func() {
		release := store.Lock(committed.ID)
		close(acquired)
		release()
	}()
	select {
	case <-acquired:
		t.Fatal("committed id not locked by LockRecord")
	case <-time.After(20 * time.Millisecond):
	}

	held.unlock()
	<-acquired
}
