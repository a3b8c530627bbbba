package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/infra/liveness"
	"checkin-core/internal/infra/remote"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/history"
	"checkin-core/internal/usecase/offline"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
	"checkin-core/internal/usecase/synctrigger"

	"go.uber.org/fx"
)

var BackgroundModule = fx.Module("background",
	fx.Invoke(RegisterBackground),
)

type BackgroundParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Store      *state.Store
	Remote     *remote.PostgresStore
	Probe      *liveness.Probe
	Journal    *history.Journal
	Queue      *offline.Queue
	Worker     *offline.Worker
	Resyncer   *synctrigger.Resyncer
	Poller     *synctrigger.Poller
	Listener   *synctrigger.Listener
	Subscriber shared.SyncSubscriber
	Clock      clock.Clock
	Location   *time.Location
	Logger     *slog.Logger
}

// RegisterBackground restores the durable queue and history, loads today's
// records when the store is up, then runs the probe, the flush worker, the
// resync poller and the sync listener until shutdown.
func RegisterBackground(p BackgroundParams) {
	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Journal.Restore(ctx); err != nil {
				return err
			}
			if err := p.Queue.Restore(ctx); err != nil {
				return err
			}

			if p.Probe.Check(ctx) {
				if err := p.Remote.SyncCapacities(ctx, p.Store.Capacities()); err != nil {
					p.Logger.Warn("could not sync slot capacities", "error", err.Error())
				}
				today := service.DateKey(p.Clock.Now(), p.Location)
				if err := p.Resyncer.Resync(ctx, today); err != nil {
					p.Logger.Warn("initial resync failed", "date", today, "error", err.Error())
				}
			} else {
				p.Logger.Warn("remote store unreachable at start, running offline")
			}

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())

			wg.Add(3)
			go func() {
				defer wg.Done()
				p.Probe.Run(runCtx)
			}()
			go func() {
				defer wg.Done()
				p.Worker.Run(runCtx)
			}()
			go func() {
				defer wg.Done()
				p.Poller.Run(runCtx)
			}()

			if p.Subscriber != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := p.Listener.Run(runCtx); err != nil {
						p.Logger.Error("sync listener stopped", "error", err.Error())
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
