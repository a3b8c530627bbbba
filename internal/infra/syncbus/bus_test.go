//go:build unit

package syncbus_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/infra/syncbus"
	"checkin-core/internal/usecase/shared"
	"checkin-core/tests/common/builder"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	valid := shared.SyncSignal{Resource: service.ResourceLaundry, Date: builder.BaseDate, Origin: "desk-2", At: builder.BaseTime}
	payload, err := json.Marshal(valid)
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "valid", payload: string(payload)},
		{name: "not json", payload: "laundry", wantErr: true},
		{name: "unknown resource", payload: `{"resource":"pools","origin":"desk-2"}`, wantErr: true},
		{name: "no origin", payload: `{"resource":"laundry"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := syncbus.Decode(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid.Resource, got.Resource)
			assert.Equal(t, valid.Origin, got.Origin)
			assert.True(t, valid.At.Equal(got.At))
		})
	}
}

func TestBus_PublishUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	bus := syncbus.New(rdb, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := bus.Publish(ctx, shared.SyncSignal{Resource: service.ResourceShowers, Origin: "desk-1"})
	assert.Error(t, err)
}
