//go:build unit || e2e

package fakeremote

import (
	"context"
	"sort"
	"sync"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra"

	"github.com/google/uuid"
)

// Store is an in-memory RemoteStore and Liveness that enforces slot capacity
// and daily uniqueness the way the database does.
type Store struct {
	mu       sync.Mutex
	records  map[string]service.Record
	subjects map[string]guest.Subject
	caps     slot.Capacities
	offline  bool
	failNext map[string]error
	calls    map[string]int

	// AfterCount runs after CountActiveInSlot returns, outside the lock.
	AfterCount func(t service.Type, date, slotKey string, count int)
	// AfterInsert runs after InsertRecord commits, outside the lock.
	AfterInsert func(rec service.Record)
}

func New() *Store {
	return &Store{
		records:  map[string]service.Record{},
		subjects: map[string]guest.Subject{},
		caps:     slot.Capacities{},
		failNext: map[string]error{},
		calls:    map[string]int{},
	}
}

func (s *Store) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

func (s *Store) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.offline
}

// FailNext makes the next call to op return err.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext[op] = err
}

func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) Seed(recs ...service.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		s.records[r.ID] = r.Clone()
	}
}

func (s *Store) SeedSubject(sub guest.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects[sub.ID] = sub.Clone()
}

func (s *Store) Records() []service.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]service.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) Get(id string) (service.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	return r.Clone(), ok
}

func (s *Store) enter(op string) error {
	s.calls[op]++
	if s.offline {
		return infra.NewRepoErr(infra.KindUnavailable, op+": store offline")
	}
	if err, ok := s.failNext[op]; ok {
		delete(s.failNext, op)
		return err
	}
	return nil
}

func (s *Store) InsertRecord(_ context.Context, rec service.Record) (service.Record, error) {
	s.mu.Lock()
	if err := s.enter("InsertRecord"); err != nil {
		s.mu.Unlock()
		return service.Record{}, err
	}
	rec.ID = uuid.NewString()
	if err := s.checkLocked(rec); err != nil {
		s.mu.Unlock()
		return service.Record{}, err
	}
	s.records[rec.ID] = rec.Clone()
	hook := s.AfterInsert
	s.mu.Unlock()

	if hook != nil {
		hook(rec.Clone())
	}
	return rec, nil
}

func (s *Store) UpdateRecord(_ context.Context, rec service.Record) (service.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateRecord"); err != nil {
		return service.Record{}, err
	}
	if _, ok := s.records[rec.ID]; !ok {
		return service.Record{}, infra.NewRepoErr(infra.KindNotFound, "record "+rec.ID)
	}
	if err := s.checkLocked(rec); err != nil {
		return service.Record{}, err
	}
	s.records[rec.ID] = rec.Clone()
	return rec, nil
}

func (s *Store) UpsertRecord(_ context.Context, rec service.Record) (service.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpsertRecord"); err != nil {
		return service.Record{}, err
	}
	if err := s.checkLocked(rec); err != nil {
		return service.Record{}, err
	}
	s.records[rec.ID] = rec.Clone()
	return rec, nil
}

func (s *Store) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteRecord"); err != nil {
		return err
	}
	if _, ok := s.records[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "record "+id)
	}
	delete(s.records, id)
	return nil
}

func (s *Store) CountActiveInSlot(_ context.Context, t service.Type, date, slotKey string) (int, error) {
	s.mu.Lock()
	if err := s.enter("CountActiveInSlot"); err != nil {
		s.mu.Unlock()
		return 0, err
	}
	n := s.countLocked(t, date, slotKey, "")
	hook := s.AfterCount
	s.mu.Unlock()

	if hook != nil {
		hook(t, date, slotKey, n)
	}
	return n, nil
}

func (s *Store) ListRecords(_ context.Context, date string) ([]service.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListRecords"); err != nil {
		return nil, err
	}
	var out []service.Record
	for _, r := range s.records {
		if r.ScheduledFor == date {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetSubject(_ context.Context, id string) (guest.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetSubject"); err != nil {
		return guest.Subject{}, err
	}
	sub, ok := s.subjects[id]
	if !ok {
		return guest.Subject{}, infra.NewRepoErr(infra.KindNotFound, "subject "+id)
	}
	return sub.Clone(), nil
}

func (s *Store) UpdateSubject(_ context.Context, sub guest.Subject) (guest.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateSubject"); err != nil {
		return guest.Subject{}, err
	}
	s.subjects[sub.ID] = sub.Clone()
	return sub, nil
}

func (s *Store) checkLocked(rec service.Record) error {
	if rec.OccupiesSlot() {
		if s.countLocked(rec.Type, rec.ScheduledFor, rec.Slot(), rec.ID) >= s.caps.For(rec.Type) {
			return infra.NewRepoErr(infra.KindCapacity, "slot "+rec.Slot()+" is full")
		}
	}
	if rec.Type.DailyUnique() && rec.IsActive() {
		for id, other := range s.records {
			if id != rec.ID && other.IsActive() && other.Type == rec.Type &&
				other.SubjectID == rec.SubjectID && other.ScheduledFor == rec.ScheduledFor {
				return infra.NewRepoErr(infra.KindDuplicateKey, "daily booking exists")
			}
		}
	}
	return nil
}

func (s *Store) countLocked(t service.Type, date, slotKey, skipID string) int {
	n := 0
	for id, r := range s.records {
		if id != skipID && r.Type == t && r.ScheduledFor == date && r.Slot() == slotKey && r.OccupiesSlot() {
			n++
		}
	}
	return n
}
