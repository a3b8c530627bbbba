//go:build unit

package synctrigger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
	"checkin-core/internal/usecase/synctrigger"
	"checkin-core/tests/common/builder"
	sharedmock "checkin-core/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTrigger_Fire(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes with origin and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pub := sharedmock.NewMockSyncPublisher(ctrl)
		clk := clock.NewMockClock(builder.BaseTime)
		trig := synctrigger.New(pub, clk, "desk-1", time.UTC, discard)

		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sig shared.SyncSignal) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, service.ResourceShowers, sig.Resource)
			assert.Equal(t, "desk-1", sig.Origin)
			assert.Equal(t, builder.BaseDate, sig.Date)
			return nil
		})

		trig.Fire(ctx, service.ResourceShowers)
		assert.Equal(t, builder.BaseTime, trig.LastSynced(service.ResourceShowers))
	})

	t.Run("publish errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pub := sharedmock.NewMockSyncPublisher(ctrl)
		trig := synctrigger.New(pub, clock.NewMockClock(builder.BaseTime), "desk-1", time.UTC, discard)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errs.New("redis down"))

		assert.NotPanics(t, func() { trig.Fire(ctx, service.ResourceLaundry) })
		assert.False(t, trig.LastSynced(service.ResourceLaundry).IsZero())
	})

	t.Run("markers strictly increase under a frozen clock", func(t *testing.T) {
		trig := synctrigger.New(nil, clock.NewMockClock(builder.BaseTime), "desk-1", time.UTC, discard)
		first := trig.Touch(service.ResourceShowers)
		second := trig.Touch(service.ResourceShowers)
		third := trig.Touch(service.ResourceShowers)
		assert.True(t, second.After(first))
		assert.True(t, third.After(second))
		markers := trig.Markers()
		assert.Len(t, markers, len(service.AllResources))
		assert.Equal(t, third, markers[service.ResourceShowers])
		assert.True(t, markers[service.ResourceMeals].IsZero())
	})
}

func TestListener_Handle(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.BaseTime)

	setup := func(t *testing.T) (*state.Store, *sharedmock.MockRemoteStore, *synctrigger.Listener, *synctrigger.Trigger) {
		ctrl := gomock.NewController(t)
		store := state.NewStore(slot.Capacities{}, history.DefaultLimit)
		remote := sharedmock.NewMockRemoteStore(ctrl)
		trig := synctrigger.New(nil, clk, "desk-1", time.UTC, discard)
		resync := synctrigger.NewResyncer(store, remote, trig, discard)
		l := synctrigger.NewListener(sharedmock.NewMockSyncSubscriber(ctrl), resync, trig, clk, time.UTC, discard)
		return store, remote, l, trig
	}

	t.Run("ignores its own signals", func(t *testing.T) {
		_, _, l, trig := setup(t)
		l.Handle(ctx, shared.SyncSignal{Resource: service.ResourceShowers, Origin: "desk-1"})
		assert.True(t, trig.LastSynced(service.ResourceShowers).IsZero())
	})

	t.Run("peer write merges the store's view", func(t *testing.T) {
		store, remote, l, trig := setup(t)
		pending := builder.NewRecordBuilder().WithSubject("g-1").Pending().BuildDomain()
		stale := builder.NewRecordBuilder().WithSubject("g-2").BuildDomain()
		store.Update(state.InsertRecord(pending), state.InsertRecord(stale))

		fresh := builder.NewRecordBuilder().WithSubject("g-3").BuildDomain()
		remote.EXPECT().ListRecords(gomock.Any(), builder.BaseDate).Return([]service.Record{fresh}, nil)

		l.Handle(ctx, shared.SyncSignal{Resource: service.ResourceShowers, Origin: "desk-2"})

		recs := store.Records()
		require.Len(t, recs, 2)
		ids := []string{recs[0].ID, recs[1].ID}
		assert.ElementsMatch(t, []string{pending.ID, fresh.ID}, ids)
		assert.False(t, trig.LastSynced(service.ResourceShowers).IsZero())
	})

	t.Run("subject changes drop cached subjects", func(t *testing.T) {
		store, _, l, _ := setup(t)
		sub := builder.NewSubjectBuilder().BuildDomain()
		store.Update(state.PutSubject(sub))

		l.Handle(ctx, shared.SyncSignal{Resource: service.ResourceSubjects, Origin: "desk-2"})

		_, ok := store.Subject(sub.ID)
		assert.False(t, ok)
	})

	t.Run("failed resync keeps local state", func(t *testing.T) {
		store, remote, l, _ := setup(t)
		rec := builder.NewRecordBuilder().BuildDomain()
		store.Update(state.InsertRecord(rec))
		remote.EXPECT().ListRecords(gomock.Any(), "2026-03-20").Return(nil, errs.New("timeout"))

		l.Handle(ctx, shared.SyncSignal{Resource: service.ResourceLaundry, Date: "2026-03-20", Origin: "desk-2"})
		assert.Len(t, store.Records(), 1)
	})
}

func TestListener_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := state.NewStore(slot.Capacities{}, history.DefaultLimit)
	remote := sharedmock.NewMockRemoteStore(ctrl)
	sub := sharedmock.NewMockSyncSubscriber(ctrl)
	clk := clock.NewMockClock(builder.BaseTime)
	trig := synctrigger.New(nil, clk, "desk-1", time.UTC, discard)
	l := synctrigger.NewListener(sub, synctrigger.NewResyncer(store, remote, trig, discard), trig, clk, time.UTC, discard)

	signals := make(chan shared.SyncSignal, 1)
	closed := false
	sub.EXPECT().Subscribe(gomock.Any()).Return((<-chan shared.SyncSignal)(signals), func() error {
		closed = true
		return nil
	}, nil)
	remote.EXPECT().ListRecords(gomock.Any(), builder.BaseDate).Return(nil, nil)

	signals <- shared.SyncSignal{Resource: service.ResourceMeals, Date: builder.BaseDate, Origin: "desk-2"}
	close(signals)

	require.NoError(t, l.Run(context.Background()))
	assert.True(t, closed)
}
