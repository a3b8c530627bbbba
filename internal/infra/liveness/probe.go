package liveness

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Probe samples store reachability on a ticker. Online is read on every
// mutation, so it only reports the last sample and never blocks.
type Probe struct {
	pinger   Pinger
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
	online   atomic.Bool
}

func NewProbe(pinger Pinger, logger *slog.Logger, cfg Config) *Probe {
	if cfg.Interval <= 0 {
		cfg.Interval = 3 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}
	return &Probe{pinger: pinger, logger: logger, interval: cfg.Interval, timeout: cfg.Timeout}
}

func (p *Probe) Online() bool {
	return p.online.Load()
}

func (p *Probe) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check pings once and records the result.
func (p *Probe) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	online := err == nil
	if was := p.online.Swap(online); was != online {
		if online {
			p.logger.Info("remote store reachable")
		} else {
			p.logger.Warn("remote store unreachable, switching to offline mode", "error", err.Error())
		}
	}
	return online
}
