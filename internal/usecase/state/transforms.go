package state

import (
	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
)

// InsertRecord appends rec unless an equivalent record is already present.
func InsertRecord(rec service.Record) Transform {
	return func(s Snapshot) Snapshot {
		if service.HasEquivalent(rec, s.Records) {
			return s
		}
		next := make([]service.Record, 0, len(s.Records)+1)
		next = append(next, s.Records...)
		s.Records = append(next, rec.Clone())
		return s
	}
}

// PutRecord replaces the record with rec.ID, or appends it when absent.
func PutRecord(rec service.Record) Transform {
	return func(s Snapshot) Snapshot {
		next := append([]service.Record(nil), s.Records...)
		if idx := indexOf(next, rec.ID); idx >= 0 {
			next[idx] = rec.Clone()
		} else {
			next = append(next, rec.Clone())
		}
		s.Records = next
		return s
	}
}

func RemoveRecord(id string) Transform {
	return func(s Snapshot) Snapshot {
		idx := indexOf(s.Records, resolve(s.Aliases, id))
		if idx < 0 {
			return s
		}
		next := make([]service.Record, 0, len(s.Records)-1)
		next = append(next, s.Records[:idx]...)
		s.Records = append(next, s.Records[idx+1:]...)
		return s
	}
}

// Reconcile swaps the placeholder for the committed row. If the committed row
// already arrived from another path the placeholder is just dropped.
func Reconcile(placeholderID string, committed service.Record) Transform {
	return func(s Snapshot) Snapshot {
		committed.PendingSync = false
		committed.QueueID = ""

		next := append([]service.Record(nil), s.Records...)
		pIdx := indexOf(next, placeholderID)
		if indexOf(next, committed.ID) >= 0 {
			if pIdx >= 0 {
				next = append(next[:pIdx], next[pIdx+1:]...)
			}
		} else if pIdx >= 0 {
			next[pIdx] = committed.Clone()
		} else {
			next = append(next, committed.Clone())
		}
		s.Records = next
		return WithAlias(placeholderID, committed.ID)(s)
	}
}

func WithAlias(from, to string) Transform {
	return func(s Snapshot) Snapshot {
		next := make(map[string]string, len(s.Aliases)+1)
		for k, v := range s.Aliases {
			next[k] = v
		}
		next[from] = to
		s.Aliases = next
		return s
	}
}

func PutSubject(sub guest.Subject) Transform {
	return func(s Snapshot) Snapshot {
		next := make(map[string]guest.Subject, len(s.Subjects)+1)
		for k, v := range s.Subjects {
			next[k] = v
		}
		next[sub.ID] = sub.Clone()
		s.Subjects = next
		return s
	}
}

func ClearSubjects() Transform {
	return func(s Snapshot) Snapshot {
		s.Subjects = map[string]guest.Subject{}
		return s
	}
}

func RecordHistory(e history.Entry) Transform {
	return func(s Snapshot) Snapshot {
		s.History, _ = s.History.Record(e)
		return s
	}
}

func RemoveHistory(id string) Transform {
	return func(s Snapshot) Snapshot {
		s.History, _ = s.History.Remove(id)
		return s
	}
}

func ReplaceHistory(log history.Log) Transform {
	return func(s Snapshot) Snapshot {
		s.History = log
		return s
	}
}

// MergeRemote replaces committed records for date with rows from the store.
// Pending placeholders are kept; the offline flush reconciles them.
func MergeRemote(date string, remote []service.Record) Transform {
	return func(s Snapshot) Snapshot {
		next := make([]service.Record, 0, len(s.Records)+len(remote))
		for _, r := range s.Records {
			if r.ScheduledFor != date {
				next = append(next, r)
			}
		}
		for _, r := range remote {
			next = append(next, r.Clone())
		}
		for _, r := range s.Records {
			if r.ScheduledFor == date && r.PendingSync {
				next = append(next, r)
			}
		}
		s.Records = next
		return s
	}
}
