//go:build unit

package localcache_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/infra/localcache"
	"checkin-core/internal/usecase/shared"
	"checkin-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Queue(t *testing.T) {
	ctx := context.Background()
	cache, err := localcache.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	first := shared.QueueEntry{
		QueueID:   "q-1",
		Resource:  service.ResourceShowers,
		Op:        shared.QueueOpInsert,
		Payload:   builder.NewRecordBuilder().Pending().BuildDomain(),
		CreatedAt: builder.BaseTime,
	}
	second := first
	second.QueueID = "q-2"
	second.CreatedAt = builder.BaseTime.Add(time.Minute)

	require.NoError(t, cache.SaveQueueEntry(ctx, second))
	require.NoError(t, cache.SaveQueueEntry(ctx, first))

	first.Attempts = 2
	first.LastError = "connection refused"
	require.NoError(t, cache.SaveQueueEntry(ctx, first))

	got, err := cache.LoadQueueEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q-1", got[0].QueueID)
	assert.Equal(t, 2, got[0].Attempts)
	assert.True(t, got[0].CreatedAt.Equal(first.CreatedAt))
	assert.Equal(t, first.Payload.ID, got[0].Payload.ID)

	require.NoError(t, cache.DeleteQueueEntry(ctx, "q-1"))
	got, err = cache.LoadQueueEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "q-2", got[0].QueueID)
}

func TestCache_HistorySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "checkin.db")

	rec := builder.NewRecordBuilder().BuildDomain()
	before := rec.Clone()
	entries := []history.Entry{
		history.NewEntry(history.ActionRecordCancelled, builder.BaseTime.Add(time.Minute), history.Payload{
			RecordID: rec.ID, Resource: service.ResourceShowers, Before: &before,
		}, "Shower cancelled", "staff-1"),
		history.NewEntry(history.ActionShowerBooked, builder.BaseTime, history.Payload{
			RecordID: rec.ID, Resource: service.ResourceShowers,
		}, "Shower booked", "staff-1"),
	}

	cache, err := localcache.Open(path)
	require.NoError(t, err)
	require.NoError(t, cache.SaveHistory(ctx, entries))
	require.NoError(t, cache.SaveHistory(ctx, entries[:1]))
	require.NoError(t, cache.Close())

	reopened, err := localcache.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, cmp.Diff(entries[0].Data.Before, got[0].Data.Before))
	assert.Equal(t, entries[0].ID, got[0].ID)
	assert.Equal(t, "staff-1", got[0].Actor)
}
