//go:build unit

package eligibility_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/eligibility"
	"checkin-core/internal/usecase/state"
	"checkin-core/tests/common/builder"
	sharedmock "checkin-core/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuard_CheckEligible(t *testing.T) {
	now := builder.BaseTime
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	banned := builder.NewSubjectBuilder().With(func(b *builder.SubjectBuilder) {
		b.DisplayName = "Jordan Lee"
	}).RestrictedUntilTime(time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC), "fighting in line").BuildDomain()

	tests := []struct {
		name      string
		subjectID string
		local     []guest.Subject
		setupMock func(m *sharedmock.MockRemoteStore)
		typ       service.Type
		wantMsg   string
	}{
		{
			name:      "unrestricted local subject",
			subjectID: "ok",
			local:     []guest.Subject{builder.NewSubjectBuilder().With(func(b *builder.SubjectBuilder) { b.ID = "ok" }).BuildDomain()},
			typ:       service.TypeShower,
		},
		{
			name:      "active restriction",
			subjectID: banned.ID,
			local:     []guest.Subject{banned},
			typ:       service.TypeShower,
			wantMsg:   "Jordan Lee is restricted from showers until Apr 2, 2026: fighting in line",
		},
		{
			name:      "restriction loaded from remote",
			subjectID: banned.ID,
			setupMock: func(m *sharedmock.MockRemoteStore) {
				m.EXPECT().GetSubject(gomock.Any(), banned.ID).Return(banned, nil)
			},
			typ:     service.TypeLaundry,
			wantMsg: "Jordan Lee is restricted from laundry until Apr 2, 2026: fighting in line",
		},
		{
			name:      "unknown subject passes",
			subjectID: "ghost",
			setupMock: func(m *sharedmock.MockRemoteStore) {
				m.EXPECT().GetSubject(gomock.Any(), "ghost").Return(guest.Subject{}, infra.NewRepoErr(infra.KindNotFound, "subject"))
			},
			typ: service.TypeShower,
		},
		{
			name:      "remote lookup failure passes",
			subjectID: "flaky",
			setupMock: func(m *sharedmock.MockRemoteStore) {
				m.EXPECT().GetSubject(gomock.Any(), "flaky").Return(guest.Subject{}, infra.NewRepoErr(infra.KindUnavailable, "subject"))
			},
			typ: service.TypeShower,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := sharedmock.NewMockRemoteStore(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(remote)
			}

			store := state.NewStore(slot.Capacities{}, history.DefaultLimit)
			for _, s := range tt.local {
				store.Update(state.PutSubject(s))
			}
			guard := eligibility.NewGuard(store, remote, clock.NewMockClock(now), la, logger)

			err := guard.CheckEligible(context.Background(), tt.subjectID, tt.typ)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errs.ErrRestrictionActive)
			var rerr *errs.RestrictionError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, "Jordan Lee", rerr.DisplayName)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestGuard_RestrictionLapses(t *testing.T) {
	until := builder.BaseTime.Add(time.Hour)
	sub := builder.NewSubjectBuilder().RestrictedUntilTime(until, "").BuildDomain()
	store := state.NewStore(slot.Capacities{}, history.DefaultLimit)
	store.Update(state.PutSubject(sub))
	clk := clock.NewMockClock(builder.BaseTime)
	guard := eligibility.NewGuard(store, nil, clk, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, guard.CheckEligible(context.Background(), sub.ID, service.TypeMeal))

	clk.Set(until)
	assert.NoError(t, guard.CheckEligible(context.Background(), sub.ID, service.TypeMeal))
}
