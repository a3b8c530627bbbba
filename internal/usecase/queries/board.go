//go:generate mockgen -source=board.go -destination=../../../tests/mock/queries/board.go -package=queriesmock

package queries

import (
	"context"
	"sort"
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"
	"checkin-core/internal/usecase/state"

	"github.com/google/uuid"
)

// BoardQueries is the read side of the operator board. Everything is served
// from local state, including records that have not reached the store yet.
type BoardQueries interface {
	Records(ctx context.Context, date string, t service.Type) ([]service.Record, error)
	Slots(ctx context.Context, t service.Type, date string) ([]slot.Occupancy, error)
	History(ctx context.Context, after *Cursor, limit int) ([]history.Entry, *Cursor, error)
	SyncStatus(ctx context.Context) SyncStatus
	Notices(ctx context.Context, limit int) []NoticeView
}

type SyncStatus struct {
	Online     bool
	QueueDepth int
	Pending    []shared.QueueEntry
	LastSynced map[service.Resource]time.Time
}

type NoticeView struct {
	Level   string
	Message string
	Actor   string
	At      time.Time
}

type PendingSource interface {
	Pending() []shared.QueueEntry
}

type MarkerSource interface {
	Markers() map[service.Resource]time.Time
}

// NoticeFeed returns the most recent operator notices, newest first.
type NoticeFeed func(limit int) []NoticeView

type boardQueriesImpl struct {
	store    *state.Store
	liveness shared.Liveness
	pending  PendingSource
	markers  MarkerSource
	notices  NoticeFeed
}

func NewBoardQueries(store *state.Store, liveness shared.Liveness, pending PendingSource, markers MarkerSource, notices NoticeFeed) BoardQueries {
	return &boardQueriesImpl{
		store:    store,
		liveness: liveness,
		pending:  pending,
		markers:  markers,
		notices:  notices,
	}
}

func (q *boardQueriesImpl) Records(_ context.Context, date string, t service.Type) ([]service.Record, error) {
	if t != "" && !t.Valid() {
		return nil, errs.Wrapf(errs.ErrInvalidInput, "unknown service type %q", t)
	}
	records := q.store.RecordsOn(date)
	out := make([]service.Record, 0, len(records))
	for _, rec := range records {
		if t == "" || rec.Type == t {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (q *boardQueriesImpl) Slots(_ context.Context, t service.Type, date string) ([]slot.Occupancy, error) {
	if t != service.TypeShower && t != service.TypeLaundry {
		return nil, errs.Wrapf(errs.ErrInvalidInput, "%q has no slots", t)
	}
	return q.store.Ledger().Snapshot(t, date), nil
}

// History pages through the log newest first. The cursor names the last
// entry of the previous page.
func (q *boardQueriesImpl) History(_ context.Context, after *Cursor, limit int) ([]history.Entry, *Cursor, error) {
	limit = ValidateLimit(limit)
	entries := q.store.History().Entries()

	start := 0
	if after != nil && after.After != "" {
		at, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(errs.Wrap(err, "decode history cursor"), errs.ErrInvalidInput)
		}
		start = len(entries)
		for i, e := range entries {
			if e.ID == id.String() {
				start = i + 1
				break
			}
			// entry evicted: resume at the first older one
			if e.Timestamp.Before(at) {
				start = i
				break
			}
		}
	}

	if start >= len(entries) {
		return []history.Entry{}, nil, nil
	}
	end := min(start+limit, len(entries))
	page := append([]history.Entry(nil), entries[start:end]...)

	var next *Cursor
	if end < len(entries) {
		last := page[len(page)-1]
		if id, err := uuid.Parse(last.ID); err == nil {
			next = &Cursor{After: EncodeAfterCursor(last.Timestamp, id)}
		}
	}
	return page, next, nil
}

func (q *boardQueriesImpl) SyncStatus(_ context.Context) SyncStatus {
	st := SyncStatus{LastSynced: map[service.Resource]time.Time{}}
	if q.liveness != nil {
		st.Online = q.liveness.Online()
	}
	if q.pending != nil {
		st.Pending = q.pending.Pending()
		st.QueueDepth = len(st.Pending)
	}
	if q.markers != nil {
		st.LastSynced = q.markers.Markers()
	}
	return st
}

func (q *boardQueriesImpl) Notices(_ context.Context, limit int) []NoticeView {
	if q.notices == nil {
		return []NoticeView{}
	}
	return q.notices(ValidateLimit(limit))
}
