package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the engine counters served on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	bookings     *prometheus.CounterVec
	slotFull     *prometheus.CounterVec
	rollbacks    *prometheus.CounterVec
	undos        *prometheus.CounterVec
	queueDepth   prometheus.Gauge
	queueFlushed *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// bookings counts creations by service type and outcome (committed, queued)
		bookings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_records_created_total",
			Help: "Records created by service type and outcome",
		}, []string{"type", "outcome"}),

		// slotFull separates stale-UI rejections (local) from lost races (remote)
		slotFull: f.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_slot_full_total",
			Help: "Bookings rejected because the slot was full, by detection phase",
		}, []string{"type", "phase"}),

		rollbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_edit_rollbacks_total",
			Help: "Optimistic edits reverted after a remote failure",
		}, []string{"operation"}),

		undos: f.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_undo_total",
			Help: "Undo attempts by action type and result",
		}, []string{"action", "result"}),

		queueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "checkin_offline_queue_depth",
			Help: "Entries waiting in the offline queue",
		}),

		queueFlushed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_offline_flushed_total",
			Help: "Offline queue entries drained, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) RecordCreated(serviceType, outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(serviceType, outcome).Inc()
}

func (m *Metrics) SlotFull(serviceType, phase string) {
	if m == nil {
		return
	}
	m.slotFull.WithLabelValues(serviceType, phase).Inc()
}

func (m *Metrics) Rollback(operation string) {
	if m == nil {
		return
	}
	m.rollbacks.WithLabelValues(operation).Inc()
}

func (m *Metrics) Undo(action, result string) {
	if m == nil {
		return
	}
	m.undos.WithLabelValues(action, result).Inc()
}

func (m *Metrics) QueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

func (m *Metrics) QueueFlushed(result string) {
	if m == nil {
		return
	}
	m.queueFlushed.WithLabelValues(result).Inc()
}
