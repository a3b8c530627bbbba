//go:generate mockgen -source=worker.go -destination=../../../tests/mock/offline/worker.go -package=offlinemock

package offline

import (
	"context"
	"log/slog"
	"time"

	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
)

type Flusher interface {
	Flush(ctx context.Context) (FlushResult, error)
	Len() int
}

type WorkerConfig struct {
	Interval time.Duration
}

// Worker drains the queue when the store comes back and keeps draining while
// entries remain.
type Worker struct {
	queue     Flusher
	liveness  shared.Liveness
	logger    *slog.Logger
	interval  time.Duration
	wasOnline bool
}

func NewWorker(queue Flusher, liveness shared.Liveness, logger *slog.Logger, cfg WorkerConfig) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	return &Worker{
		queue:    queue,
		liveness: liveness,
		logger:   logger,
		interval: cfg.Interval,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick samples liveness once and flushes on an offline→online transition or
// when entries are still waiting.
func (w *Worker) Tick(ctx context.Context) {
	online := w.liveness.Online()
	reconnected := online && !w.wasOnline
	w.wasOnline = online

	if !online {
		return
	}
	if !reconnected && w.queue.Len() == 0 {
		return
	}

	res, err := w.queue.Flush(ctx)
	if err != nil {
		if errs.Is(err, errs.ErrRemoteUnavailable) {
			w.logger.Debug("offline queue flush deferred", "remaining", res.Remaining)
			return
		}
		w.logger.Error("offline queue flush failed", "error", err.Error())
		return
	}
	if res.Synced > 0 || res.Rejected > 0 {
		w.logger.Info("offline queue flushed",
			"synced", res.Synced, "rejected", res.Rejected, "remaining", res.Remaining)
	}
}
