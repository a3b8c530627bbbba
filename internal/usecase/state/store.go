package state

import (
	"sync"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
)

// Snapshot is the whole local view: records, subjects, history and the
// placeholder aliases left behind by reconciled offline inserts.
type Snapshot struct {
	Records  []service.Record
	Subjects map[string]guest.Subject
	History  history.Log
	Aliases  map[string]string
}

// Transform is a pure function from one snapshot to the next. It must not
// mutate its argument; the helpers in this package all copy before writing.
type Transform func(Snapshot) Snapshot

// Store is the single owner of local state. Writers go through Update, which
// applies transforms atomically; readers get copies.
type Store struct {
	mu         sync.RWMutex
	snap       Snapshot
	capacities slot.Capacities
	keys       keyedLock
}

func NewStore(capacities slot.Capacities, historyLimit int) *Store {
	return &Store{
		snap: Snapshot{
			Subjects: map[string]guest.Subject{},
			History:  history.NewLog(historyLimit),
			Aliases:  map[string]string{},
		},
		capacities: capacities,
	}
}

// Lock serializes work on one key (a record id, or a subject/type/date tuple
// for creations). Different keys never block each other.
func (s *Store) Lock(key string) (unlock func()) {
	return s.keys.lock(key)
}

// LockRecord locks the record id currently resolves to. A flush can alias a
// placeholder while the caller waits, so the id is resolved again once the
// lock is held and the lock is moved if it now points elsewhere.
func (s *Store) LockRecord(id string) (resolved string, unlock func()) {
	resolved = s.ResolveID(id)
	for {
		unlock = s.keys.lock(resolved)
		again := s.ResolveID(id)
		if again == resolved {
			return resolved, unlock
		}
		unlock()
		resolved = again
	}
}

func (s *Store) Capacities() slot.Capacities {
	return s.capacities
}

// Update applies the transforms in order under one lock and returns the result.
func (s *Store) Update(fns ...Transform) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap
	for _, fn := range fns {
		next = fn(next)
	}
	s.snap = next
	return copySnapshot(next)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap)
}

// Record looks id up, following the alias of a reconciled placeholder.
func (s *Store) Record(id string) (service.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOf(s.snap.Records, resolve(s.snap.Aliases, id))
	if idx < 0 {
		return service.Record{}, false
	}
	return s.snap.Records[idx].Clone(), true
}

func (s *Store) Records() []service.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.snap.Records)
}

func (s *Store) RecordsOn(date string) []service.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Record, 0)
	for _, r := range s.snap.Records {
		if r.ScheduledFor == date {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *Store) Subject(id string) (guest.Subject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.snap.Subjects[id]
	if !ok {
		return guest.Subject{}, false
	}
	return sub.Clone(), true
}

func (s *Store) Ledger() slot.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slot.Build(s.snap.Records, s.capacities)
}

func (s *Store) History() history.Log {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.History
}

// ResolveID maps a reconciled placeholder id to the id the store assigned.
func (s *Store) ResolveID(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolve(s.snap.Aliases, id)
}

func resolve(aliases map[string]string, id string) string {
	if to, ok := aliases[id]; ok {
		return to
	}
	return id
}

func indexOf(records []service.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(in []service.Record) []service.Record {
	out := make([]service.Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

func copySnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Records:  cloneRecords(s.Records),
		Subjects: make(map[string]guest.Subject, len(s.Subjects)),
		History:  s.History,
		Aliases:  make(map[string]string, len(s.Aliases)),
	}
	for k, v := range s.Subjects {
		out.Subjects[k] = v.Clone()
	}
	for k, v := range s.Aliases {
		out.Aliases[k] = v
	}
	return out
}
