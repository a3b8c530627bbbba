package eligibility

import (
	"context"
	"log/slog"
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/clock"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"
)

// Guard blocks creations for subjects under an active restriction.
type Guard struct {
	store    *state.Store
	remote   shared.RemoteStore
	clock    clock.Clock
	location *time.Location
	logger   *slog.Logger
}

func NewGuard(store *state.Store, remote shared.RemoteStore, clk clock.Clock, loc *time.Location, logger *slog.Logger) *Guard {
	if loc == nil {
		loc = time.UTC
	}
	return &Guard{store: store, remote: remote, clock: clk, location: loc, logger: logger}
}

// CheckEligible returns a *errs.RestrictionError when subjectID may not use t.
// Unknown subjects pass; the guard only enforces restrictions.
func (g *Guard) CheckEligible(ctx context.Context, subjectID string, t service.Type) error {
	sub, ok := g.lookup(ctx, subjectID)
	if !ok {
		return nil
	}
	if !sub.RestrictedAt(g.clock.Now(), t) {
		return nil
	}
	return &errs.RestrictionError{
		SubjectID:   sub.ID,
		DisplayName: sub.DisplayName,
		Service:     t.Label(),
		Until:       *sub.RestrictedUntil,
		Reason:      sub.RestrictionReason,
		Location:    g.location,
	}
}

func (g *Guard) lookup(ctx context.Context, subjectID string) (guest.Subject, bool) {
	if sub, ok := g.store.Subject(subjectID); ok {
		return sub, true
	}
	if g.remote == nil {
		return guest.Subject{}, false
	}

	sub, err := g.remote.GetSubject(ctx, subjectID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			g.logger.Warn("subject lookup failed, skipping restriction check",
				"subject_id", subjectID, "error", err.Error())
		}
		return guest.Subject{}, false
	}
	g.store.Update(state.PutSubject(sub))
	return sub, true
}
