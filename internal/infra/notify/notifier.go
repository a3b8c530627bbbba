package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/usecase/queries"
	"checkin-core/internal/usecase/shared"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const defaultCapacity = 100

type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Actor   string    `json:"actor,omitempty"`
	At      time.Time `json:"at"`
}

// LogNotifier writes operator notices to the structured log and keeps the
// most recent ones for the notices endpoint.
type LogNotifier struct {
	mu       sync.Mutex
	recent   []Notice
	capacity int
	clock    clock.Clock
	logger   *slog.Logger
}

func NewLogNotifier(clk clock.Clock, logger *slog.Logger, capacity int) *LogNotifier {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &LogNotifier{capacity: capacity, clock: clk, logger: logger}
}

func (n *LogNotifier) Success(ctx context.Context, msg string) {
	n.push(ctx, LevelSuccess, msg)
}

func (n *LogNotifier) Warning(ctx context.Context, msg string) {
	n.push(ctx, LevelWarning, msg)
}

func (n *LogNotifier) Error(ctx context.Context, msg string) {
	n.push(ctx, LevelError, msg)
}

func (n *LogNotifier) push(ctx context.Context, level Level, msg string) {
	notice := Notice{Level: level, Message: msg, Actor: shared.ActorFrom(ctx), At: n.clock.Now()}

	n.mu.Lock()
	n.recent = append(n.recent, notice)
	if over := len(n.recent) - n.capacity; over > 0 {
		n.recent = append([]Notice(nil), n.recent[over:]...)
	}
	n.mu.Unlock()

	attrs := []any{"notice", string(level), "actor", notice.Actor}
	switch level {
	case LevelError:
		n.logger.ErrorContext(ctx, msg, attrs...)
	case LevelWarning:
		n.logger.WarnContext(ctx, msg, attrs...)
	default:
		n.logger.InfoContext(ctx, msg, attrs...)
	}
}

// Recent returns up to limit notices, newest first. limit <= 0 means all.
func (n *LogNotifier) Recent(limit int) []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	if limit <= 0 || limit > len(n.recent) {
		limit = len(n.recent)
	}
	out := make([]Notice, 0, limit)
	for i := len(n.recent) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, n.recent[i])
	}
	return out
}

// Count returns how many retained notices have the given level.
func (n *LogNotifier) Count(level Level) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, notice := range n.recent {
		if notice.Level == level {
			c++
		}
	}
	return c
}

// Feed exposes Recent to the board queries.
func (n *LogNotifier) Feed() queries.NoticeFeed {
	return func(limit int) []queries.NoticeView {
		recent := n.Recent(limit)
		out := make([]queries.NoticeView, 0, len(recent))
		for _, notice := range recent {
			out = append(out, queries.NoticeView{
				Level:   string(notice.Level),
				Message: notice.Message,
				Actor:   notice.Actor,
				At:      notice.At,
			})
		}
		return out
	}
}
