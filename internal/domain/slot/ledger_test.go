//go:build unit

package slot_test

import (
	"testing"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	records := []service.Record{
		builder.NewRecordBuilder().WithSlot("08:00").BuildDomain(),
		builder.NewRecordBuilder().WithSlot("08:00").Pending().BuildDomain(),
		builder.NewRecordBuilder().WithSlot("09:00").WithStatus(service.StatusCancelled).BuildDomain(),
		builder.NewRecordBuilder().Waitlisted().BuildDomain(),
		builder.NewRecordBuilder().WithSlot("09:00").WithStatus(service.StatusDone).BuildDomain(),
		builder.NewRecordBuilder().Laundry(service.LaundryOnsite).WithSlot("08:00").BuildDomain(),
		builder.NewRecordBuilder().Laundry(service.LaundryOffsite).BuildDomain(),
	}

	ledger := slot.Build(records, slot.Capacities{service.TypeLaundry: 3})

	t.Run("counts", func(t *testing.T) {
		assert.Equal(t, 2, ledger.Count(service.TypeShower, builder.BaseDate, "08:00"))
		assert.Equal(t, 1, ledger.Count(service.TypeShower, builder.BaseDate, "09:00"))
		assert.Equal(t, 1, ledger.Count(service.TypeLaundry, builder.BaseDate, "08:00"))
		assert.Equal(t, 0, ledger.Count(service.TypeShower, "2026-03-15", "08:00"))
	})

	t.Run("availability", func(t *testing.T) {
		assert.False(t, ledger.HasAvailability(service.TypeShower, builder.BaseDate, "08:00"))
		assert.True(t, ledger.HasAvailability(service.TypeShower, builder.BaseDate, "09:00"))
		assert.True(t, ledger.HasAvailability(service.TypeLaundry, builder.BaseDate, "08:00"))
		assert.Equal(t, 3, ledger.Capacity(service.TypeLaundry))
		assert.Equal(t, slot.DefaultCapacity, ledger.Capacity(service.TypeShower))
	})

	t.Run("snapshot", func(t *testing.T) {
		got := ledger.Snapshot(service.TypeShower, builder.BaseDate)
		assert.Equal(t, []slot.Occupancy{
			{Slot: "08:00", Count: 2, Capacity: 2},
			{Slot: "09:00", Count: 1, Capacity: 2},
		}, got)
		assert.True(t, got[0].Full())
		assert.Empty(t, ledger.Snapshot(service.TypeBicycle, builder.BaseDate))
	})
}
