package history

// Log is the newest-first action history. It is a value: every write returns a
// new Log and never mutates entries another holder can see.
type Log struct {
	limit   int
	entries []Entry
}

func NewLog(limit int) Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Log{limit: limit}
}

// RestoreLog rebuilds a log from persisted entries, which are newest-first.
func RestoreLog(limit int, entries []Entry) Log {
	l := NewLog(limit)
	n := len(entries)
	if n > l.limit {
		n = l.limit
	}
	l.entries = append([]Entry(nil), entries[:n]...)
	return l
}

// Record pushes e at the head and trims to the limit. Evicted entries are returned.
func (l Log) Record(e Entry) (Log, []Entry) {
	if l.limit <= 0 {
		l.limit = DefaultLimit
	}
	next := make([]Entry, 0, len(l.entries)+1)
	next = append(next, e)
	next = append(next, l.entries...)

	var evicted []Entry
	if len(next) > l.limit {
		evicted = append(evicted, next[l.limit:]...)
		next = next[:l.limit]
	}
	return Log{limit: l.limit, entries: next}, evicted
}

func (l Log) Find(id string) (Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func (l Log) Remove(id string) (Log, bool) {
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		next := make([]Entry, 0, len(l.entries)-1)
		next = append(next, l.entries[:i]...)
		next = append(next, l.entries[i+1:]...)
		return Log{limit: l.limit, entries: next}, true
	}
	return l, false
}

// Entries returns a copy, newest first.
func (l Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

func (l Log) Len() int {
	return len(l.entries)
}

func (l Log) Limit() int {
	if l.limit <= 0 {
		return DefaultLimit
	}
	return l.limit
}
