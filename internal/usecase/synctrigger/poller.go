package synctrigger

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

type DayResyncer interface {
	Resync(ctx context.Context, date string) error
}

type PollerConfig struct {
	Interval time.Duration
}

// Poller refreshes local state from the store on a fixed interval, so peer
// bookings and lost races surface even without a sync bus.
type Poller struct {
	store    *state.Store
	resyncer DayResyncer
	liveness shared.Liveness
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
	interval time.Duration
}

func NewPoller(
	store *state.Store,
	resyncer DayResyncer,
	liveness shared.Liveness,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
	cfg PollerConfig,
) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	return &Poller{
		store:    store,
		resyncer: resyncer,
		liveness: liveness,
		clock:    clk,
		loc:      loc,
		logger:   logger,
		interval: cfg.Interval,
	}
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick resyncs today and every other day local state holds records for.
// Nothing happens while the store is unreachable.
func (p *Poller) Tick(ctx context.Context) {
	if !p.liveness.Online() {
		return
	}
	for _, date := range p.dates() {
		if err := p.resyncer.Resync(ctx, date); err != nil {
			p.logger.Warn("periodic resync failed", "date", date, "error", err.Error())
			return
		}
	}
}

func (p *Poller) dates() []string {
	today := service.DateKey(p.clock.Now(), p.loc)
	seen := map[string]struct{}{today: {}}
	out := []string{today}
	for _, rec := range p.store.Records() {
		if rec.ScheduledFor == "" {
			continue
		}
		if _, ok := seen[rec.ScheduledFor]; ok {
			continue
		}
		seen[rec.ScheduledFor] = struct{}{}
		out = append(out, rec.ScheduledFor)
	}
	sort.Strings(out[1:])
	return out
}
