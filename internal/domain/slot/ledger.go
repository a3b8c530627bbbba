package slot

import (
	"sort"

	"checkin-core/internal/domain/service"
)

const DefaultCapacity = 2

// Capacities maps slotted service types to the number of guests one slot holds.
type Capacities map[service.Type]int

func (c Capacities) For(t service.Type) int {
	if n, ok := c[t]; ok && n > 0 {
		return n
	}
	return DefaultCapacity
}

type key struct {
	typ  service.Type
	date string
	slot string
}

// Ledger is slot occupancy derived from a record set. It is never stored;
// rebuild it from the records it describes.
type Ledger struct {
	counts     map[key]int
	capacities Capacities
}

// Occupancy is one row of a ledger snapshot.
type Occupancy struct {
	Slot     string `json:"slot"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
}

func (o Occupancy) Full() bool {
	return o.Count >= o.Capacity
}

// Build counts every slot-occupying record, pending placeholders included.
func Build(records []service.Record, capacities Capacities) Ledger {
	l := Ledger{counts: make(map[key]int), capacities: capacities}
	for _, rec := range records {
		if !rec.OccupiesSlot() {
			continue
		}
		l.counts[key{rec.Type, rec.ScheduledFor, rec.Slot()}]++
	}
	return l
}

func (l Ledger) Count(t service.Type, date, slotKey string) int {
	return l.counts[key{t, date, slotKey}]
}

func (l Ledger) Capacity(t service.Type) int {
	return l.capacities.For(t)
}

func (l Ledger) HasAvailability(t service.Type, date, slotKey string) bool {
	return HasRoom(l.Count(t, date, slotKey), l.Capacity(t))
}

// Snapshot lists occupied slots for (t, date) ordered by slot key.
func (l Ledger) Snapshot(t service.Type, date string) []Occupancy {
	out := make([]Occupancy, 0)
	for k, n := range l.counts {
		if k.typ != t || k.date != date {
			continue
		}
		out = append(out, Occupancy{Slot: k.slot, Count: n, Capacity: l.Capacity(t)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

func HasRoom(count, capacity int) bool {
	return count < capacity
}
