package synctrigger

import (
	"context"
	"log/slog"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/shared"
)

// Listener resyncs when a peer announces a write.
type Listener struct {
	subscriber shared.SyncSubscriber
	resyncer   *Resyncer
	trigger    *Trigger
	clock      clock.Clock
	location   *time.Location
	logger     *slog.Logger
}

func NewListener(sub shared.SyncSubscriber, resyncer *Resyncer, trigger *Trigger, clk clock.Clock, loc *time.Location, logger *slog.Logger) *Listener {
	if loc == nil {
		loc = time.UTC
	}
	return &Listener{
		subscriber: sub,
		resyncer:   resyncer,
		trigger:    trigger,
		clock:      clk,
		location:   loc,
		logger:     logger,
	}
}

// Run blocks until ctx is done or the subscription closes.
func (l *Listener) Run(ctx context.Context) error {
	signals, closeFn, err := l.subscriber.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			l.logger.Warn("failed to close sync subscription", "error", err.Error())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			l.Handle(ctx, sig)
		}
	}
}

func (l *Listener) Handle(ctx context.Context, sig shared.SyncSignal) {
	if sig.Origin == l.trigger.Origin() {
		return
	}
	if sig.Resource == service.ResourceSubjects {
		// cached restrictions may be stale; the guard refetches on next use
		l.resyncer.ForgetSubjects()
		l.trigger.Touch(sig.Resource)
		return
	}
	date := sig.Date
	if date == "" {
		date = service.DateKey(l.clock.Now(), l.location)
	}
	if err := l.resyncer.Resync(ctx, date); err != nil {
		l.logger.Warn("peer resync failed", "resource", sig.Resource, "date", date, "error", err.Error())
	}
}
