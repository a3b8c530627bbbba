package synctrigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/shared"
)

const publishTimeout = 500 * time.Millisecond

// Trigger keeps a strictly increasing last-synced marker per resource and
// tells peers to refetch after local writes.
type Trigger struct {
	mu        sync.Mutex
	last      map[service.Resource]time.Time
	publisher shared.SyncPublisher
	clock     clock.Clock
	origin    string
	location  *time.Location
	logger    *slog.Logger
}

func New(publisher shared.SyncPublisher, clk clock.Clock, origin string, loc *time.Location, logger *slog.Logger) *Trigger {
	if loc == nil {
		loc = time.UTC
	}
	return &Trigger{
		last:      make(map[service.Resource]time.Time),
		publisher: publisher,
		clock:     clk,
		origin:    origin,
		location:  loc,
		logger:    logger,
	}
}

func (t *Trigger) Origin() string {
	return t.origin
}

// Fire advances the marker and publishes a best-effort signal. Errors are
// logged and never reach the caller.
func (t *Trigger) Fire(ctx context.Context, resource service.Resource) {
	at := t.Touch(resource)
	if t.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	sig := shared.SyncSignal{
		Resource: resource,
		Date:     service.DateKey(at, t.location),
		Origin:   t.origin,
		At:       at,
	}
	if err := t.publisher.Publish(pubCtx, sig); err != nil {
		t.logger.Warn("sync signal not published", "resource", resource, "error", err.Error())
	}
}

// Touch advances the marker without notifying peers.
func (t *Trigger) Touch(resource service.Resource) time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if prev, ok := t.last[resource]; ok && !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	t.last[resource] = now
	return now
}

func (t *Trigger) LastSynced(resource service.Resource) time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last[resource]
}

// Markers returns every resource marker, zero for resources never synced.
func (t *Trigger) Markers() map[service.Resource]time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[service.Resource]time.Time, len(service.AllResources))
	for _, r := range service.AllResources {
		out[r] = t.last[r]
	}
	return out
}
