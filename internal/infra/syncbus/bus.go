package syncbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const defaultChannel = "checkin:sync"

// Bus carries sync signals between clients over Redis pub/sub. Delivery is
// best effort: a peer that misses a signal catches up on its next resync.
type Bus struct {
	rdb     *redis.Client
	channel string
	logger  *slog.Logger
}

func New(rdb *redis.Client, channel string, logger *slog.Logger) *Bus {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = defaultChannel
	}
	return &Bus{rdb: rdb, channel: channel, logger: logger}
}

func (b *Bus) Publish(ctx context.Context, sig shared.SyncSignal) error {
	payload, err := json.Marshal(sig)
	if err != nil {
		return errs.Wrap(err, "encode sync signal")
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errs.Wrap(err, "publish sync signal")
	}
	return nil
}

// Subscribe returns decoded signals until ctx ends or the returned close
// function is called. Malformed messages are logged and skipped.
func (b *Bus) Subscribe(ctx context.Context) (<-chan shared.SyncSignal, func() error, error) {
	ps := b.rdb.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, errs.Wrap(err, "subscribe to sync channel")
	}

	out := make(chan shared.SyncSignal)
	go func() {
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				sig, err := Decode(msg.Payload)
				if err != nil {
					b.logger.Warn("dropping malformed sync signal", "error", err.Error())
					continue
				}
				select {
				case out <- sig:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, ps.Close, nil
}

func Decode(payload string) (shared.SyncSignal, error) {
	var sig shared.SyncSignal
	if err := json.Unmarshal([]byte(payload), &sig); err != nil {
		return shared.SyncSignal{}, errs.Wrap(err, "decode sync signal")
	}
	if !sig.Resource.Valid() || sig.Origin == "" {
		return shared.SyncSignal{}, errs.Newf("sync signal missing resource or origin: %q", payload)
	}
	return sig, nil
}

// Close releases the Redis client.
func (b *Bus) Close() error {
	return b.rdb.Close()
}
