//go:build unit

package service_test

import (
	"testing"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/errs"
	"checkin-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		typ  service.Type
		mode service.LaundryMode
		from service.Status
		to   service.Status
		want bool
	}{
		{"shower awaiting to done", service.TypeShower, "", service.StatusAwaiting, service.StatusDone, true},
		{"shower waitlisted to cancelled", service.TypeShower, "", service.StatusWaitlisted, service.StatusCancelled, true},
		{"shower done is terminal", service.TypeShower, "", service.StatusDone, service.StatusAwaiting, false},
		{"shower cannot go to washer", service.TypeShower, "", service.StatusAwaiting, service.StatusWasher, false},
		{"onsite waiting to washer", service.TypeLaundry, service.LaundryOnsite, service.StatusWaiting, service.StatusWasher, true},
		{"onsite cannot skip dryer", service.TypeLaundry, service.LaundryOnsite, service.StatusWasher, service.StatusDone, false},
		{"onsite done to picked up", service.TypeLaundry, service.LaundryOnsite, service.StatusDone, service.StatusPickedUp, true},
		{"onsite dryer cancelled", service.TypeLaundry, service.LaundryOnsite, service.StatusDryer, service.StatusCancelled, true},
		{"onsite picked up is terminal", service.TypeLaundry, service.LaundryOnsite, service.StatusPickedUp, service.StatusCancelled, false},
		{"offsite pending to transported", service.TypeLaundry, service.LaundryOffsite, service.StatusPending, service.StatusTransported, true},
		{"offsite transported to picked up", service.TypeLaundry, service.LaundryOffsite, service.StatusTransported, service.StatusOffsitePickedUp, true},
		{"offsite cannot use onsite flow", service.TypeLaundry, service.LaundryOffsite, service.StatusWaiting, service.StatusWasher, false},
		{"bicycle pending to in progress", service.TypeBicycle, "", service.StatusPending, service.StatusInProgress, true},
		{"bicycle in progress to done", service.TypeBicycle, "", service.StatusInProgress, service.StatusDone, true},
		{"meal can be cancelled", service.TypeMeal, "", service.StatusDone, service.StatusCancelled, true},
		{"cancelled never transitions", service.TypeBicycle, "", service.StatusCancelled, service.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CanTransition(tt.typ, tt.mode, tt.from, tt.to))
		})
	}
}

func TestRecord_ApplyStatus(t *testing.T) {
	t.Run("completion keeps drop-off date", func(t *testing.T) {
		rec := builder.NewRecordBuilder().Laundry(service.LaundryOnsite).BuildDomain()
		later := builder.BaseTime.Add(48 * time.Hour)

		for _, next := range []service.Status{service.StatusWasher, service.StatusDryer, service.StatusDone, service.StatusPickedUp} {
			require.NoError(t, rec.ApplyStatus(next, later))
		}

		assert.Equal(t, builder.BaseDate, rec.ScheduledFor)
		assert.Equal(t, service.StatusPickedUp, rec.Status)
		require.NotNil(t, rec.CompletedAt)
		assert.Equal(t, later, *rec.CompletedAt)
		assert.Equal(t, later, rec.LastUpdated)
	})

	t.Run("offsite completion keeps drop-off date", func(t *testing.T) {
		rec := builder.NewRecordBuilder().Laundry(service.LaundryOffsite).BuildDomain()
		later := builder.BaseTime.Add(72 * time.Hour)

		require.NoError(t, rec.ApplyStatus(service.StatusTransported, later))
		require.NoError(t, rec.ApplyStatus(service.StatusOffsitePickedUp, later))

		assert.Equal(t, builder.BaseDate, rec.ScheduledFor)
		require.NotNil(t, rec.CompletedAt)
	})

	t.Run("invalid transition leaves record untouched", func(t *testing.T) {
		rec := builder.NewRecordBuilder().BuildDomain()
		before := rec.Clone()

		err := rec.ApplyStatus(service.StatusPickedUp, builder.BaseTime.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, cmp.Diff(before, rec))
	})
}

func TestRecord_Clone(t *testing.T) {
	rec := builder.NewRecordBuilder().BuildDomain()
	done := builder.BaseTime.Add(time.Hour)
	rec.CompletedAt = &done

	cp := rec.Clone()
	require.Empty(t, cmp.Diff(rec, cp))

	*cp.SlotKey = "09:00"
	*cp.CompletedAt = done.Add(time.Hour)

	assert.Equal(t, "08:00", rec.Slot())
	assert.Equal(t, done, *rec.CompletedAt)
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.Record)
		errIs  error
	}{
		{name: "valid shower", mutate: func(*service.Record) {}},
		{name: "unknown type", mutate: func(r *service.Record) { r.Type = "sauna" }, errIs: errs.ErrInvalidInput},
		{name: "missing subject", mutate: func(r *service.Record) { r.SubjectID = " " }, errIs: errs.ErrInvalidInput},
		{name: "bad date", mutate: func(r *service.Record) { r.ScheduledFor = "03/14/2026" }, errIs: errs.ErrInvalidInput},
		{name: "laundry without mode", mutate: func(r *service.Record) { r.Type = service.TypeLaundry; r.Status = service.StatusWaiting }, errIs: errs.ErrInvalidInput},
		{name: "mode on shower", mutate: func(r *service.Record) { r.LaundryMode = service.LaundryOnsite }, errIs: errs.ErrInvalidInput},
		{name: "blank slot", mutate: func(r *service.Record) { blank := ""; r.SlotKey = &blank }, errIs: errs.ErrInvalidInput},
		{name: "status from another flow", mutate: func(r *service.Record) { r.Status = service.StatusWasher }, errIs: errs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := builder.NewRecordBuilder().BuildDomain()
			tt.mutate(&rec)

			err := rec.Validate()
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestHasEquivalent(t *testing.T) {
	subject := "guest-1"
	existing := []service.Record{
		builder.NewRecordBuilder().WithID("r1").WithSubject(subject).WithSlot("08:00").BuildDomain(),
		builder.NewRecordBuilder().WithID("r2").WithSubject("guest-2").WithSlot("09:00").WithStatus(service.StatusCancelled).BuildDomain(),
	}

	tests := []struct {
		name      string
		candidate service.Record
		want      bool
	}{
		{
			name:      "same id",
			candidate: builder.NewRecordBuilder().WithID("r1").WithSubject("someone").BuildDomain(),
			want:      true,
		},
		{
			name:      "same subject slot and date",
			candidate: builder.NewRecordBuilder().WithSubject(subject).WithSlot("08:00").BuildDomain(),
			want:      true,
		},
		{
			name:      "different slot",
			candidate: builder.NewRecordBuilder().WithSubject(subject).WithSlot("10:00").BuildDomain(),
			want:      false,
		},
		{
			name:      "matches only a cancelled record",
			candidate: builder.NewRecordBuilder().WithSubject("guest-2").WithSlot("09:00").BuildDomain(),
			want:      false,
		},
		{
			name: "generic logs are never deduped by content",
			candidate: builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) {
				b.Type = service.TypeMeal
				b.SlotKey = nil
				b.Status = service.StatusDone
			}).WithSubject(subject).BuildDomain(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.HasEquivalent(tt.candidate, existing))
		})
	}
}

func TestFindActive(t *testing.T) {
	done := builder.NewRecordBuilder().WithSubject("g").Laundry(service.LaundryOnsite).WithStatus(service.StatusPickedUp).BuildDomain()
	cancelled := builder.NewRecordBuilder().WithSubject("g").WithStatus(service.StatusCancelled).BuildDomain()
	records := []service.Record{done, cancelled}

	got, ok := service.FindActive(records, "g", service.TypeLaundry, builder.BaseDate)
	require.True(t, ok)
	assert.Equal(t, done.ID, got.ID)

	_, ok = service.FindActive(records, "g", service.TypeShower, builder.BaseDate)
	assert.False(t, ok)

	_, ok = service.FindActive(records, "g", service.TypeLaundry, "2026-03-15")
	assert.False(t, ok)
}

func TestPlaceholderAndDateKey(t *testing.T) {
	id := service.NewPlaceholderID()
	assert.True(t, service.IsPlaceholderID(id))
	assert.False(t, service.IsPlaceholderID("7d9a3a52-2f7b-4c0e-9d53-0f1a0e7f5b11"))

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	// 06:30 UTC is still the previous evening in Los Angeles
	ts := time.Date(2026, 3, 15, 6, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14", service.DateKey(ts, la))
	assert.Equal(t, "2026-03-15", service.DateKey(ts, nil))
}
