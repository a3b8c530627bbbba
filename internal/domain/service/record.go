package service

import (
	"strings"
	"time"

	"checkin-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const PlaceholderPrefix = "local-"

// Record is one shower, laundry, repair or logged service for a subject.
type Record struct {
	ID           string      `json:"id"`
	SubjectID    string      `json:"subjectId"`
	Type         Type        `json:"type"`
	SlotKey      *string     `json:"slotKey,omitempty"`
	LaundryMode  LaundryMode `json:"laundryMode,omitempty"`
	ScheduledFor string      `json:"scheduledFor"`
	Status       Status      `json:"status"`
	BagNumber    string      `json:"bagNumber,omitempty"`
	Note         string      `json:"note,omitempty"`
	Quantity     int         `json:"quantity,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	LastUpdated  time.Time   `json:"lastUpdated"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
	PendingSync  bool        `json:"pendingSync"`
	QueueID      string      `json:"queueId,omitempty"`
}

// Clone returns a deep copy; pointer fields are not shared with r.
func (r Record) Clone() Record {
	var out Record
	if err := copier.CopyWithOption(&out, &r, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on invalid arguments, which a Record never is
		panic(err)
	}
	return out
}

func (r Record) Slot() string {
	if r.SlotKey == nil {
		return ""
	}
	return *r.SlotKey
}

func (r Record) IsActive() bool {
	return IsActive(r.Status)
}

func (r Record) OccupiesSlot() bool {
	return r.SlotKey != nil && OccupiesSlot(r.Status)
}

func (r Record) IsPlaceholder() bool {
	return IsPlaceholderID(r.ID)
}

// Validate checks the shape of a record before it is written anywhere.
func (r Record) Validate() error {
	if !r.Type.Valid() {
		return errs.Wrapf(errs.ErrInvalidInput, "unknown service type %q", r.Type)
	}
	if strings.TrimSpace(r.SubjectID) == "" {
		return errs.Wrap(errs.ErrInvalidInput, "subject id is required")
	}
	if _, err := time.Parse(time.DateOnly, r.ScheduledFor); err != nil {
		return errs.Wrapf(errs.ErrInvalidInput, "scheduled date %q", r.ScheduledFor)
	}
	if r.Type == TypeLaundry && !r.LaundryMode.Valid() {
		return errs.Wrapf(errs.ErrInvalidInput, "laundry mode %q", r.LaundryMode)
	}
	if r.Type != TypeLaundry && r.LaundryMode != "" {
		return errs.Wrap(errs.ErrInvalidInput, "laundry mode only applies to laundry")
	}
	if r.SlotKey != nil && strings.TrimSpace(*r.SlotKey) == "" {
		return errs.Wrap(errs.ErrInvalidInput, "slot key must not be blank")
	}
	if !KnownStatus(r.Type, r.LaundryMode, r.Status) {
		return errs.Wrapf(errs.ErrInvalidInput, "status %q is not valid for %s", r.Status, r.Type)
	}
	return nil
}

// ApplyStatus moves r to status to. ScheduledFor is never touched so the
// drop-off date keeps driving daily bookkeeping after completion.
func (r *Record) ApplyStatus(to Status, now time.Time) error {
	if !CanTransition(r.Type, r.LaundryMode, r.Status, to) {
		return errs.Wrapf(errs.ErrInvalidTransition, "%s %s: %s -> %s", r.Type, r.ID, r.Status, to)
	}
	r.Status = to
	r.LastUpdated = now
	if IsCompletion(r.Type, r.LaundryMode, to) {
		completed := now
		r.CompletedAt = &completed
	}
	return nil
}

func NewPlaceholderID() string {
	return PlaceholderPrefix + uuid.NewString()
}

// IsPlaceholderID reports whether id was generated locally and never reached the store.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, PlaceholderPrefix)
}

// DateKey is the calendar date of t in loc, formatted YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

// Equivalent reports whether a and b describe the same booking: same id, or for
// daily-unique kinds the same active subject/type/date/slot.
func Equivalent(a, b Record) bool {
	if a.ID != "" && a.ID == b.ID {
		return true
	}
	if !a.Type.DailyUnique() || a.Type != b.Type {
		return false
	}
	return a.SubjectID == b.SubjectID &&
		a.ScheduledFor == b.ScheduledFor &&
		a.Slot() == b.Slot() &&
		a.IsActive() && b.IsActive()
}

// HasEquivalent is the duplicate guard run before every insert into a collection.
func HasEquivalent(candidate Record, existing []Record) bool {
	return IndexOfEquivalent(candidate, existing) >= 0
}

func IndexOfEquivalent(candidate Record, existing []Record) int {
	for i, rec := range existing {
		if Equivalent(candidate, rec) {
			return i
		}
	}
	return -1
}

// FindActive returns the active record a subject holds for (t, dateKey), if any.
func FindActive(records []Record, subjectID string, t Type, dateKey string) (Record, bool) {
	for _, rec := range records {
		if rec.SubjectID == subjectID && rec.Type == t && rec.ScheduledFor == dateKey && rec.IsActive() {
			return rec, true
		}
	}
	return Record{}, false
}
