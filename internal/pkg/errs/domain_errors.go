package errs

import (
	"fmt"
	"strings"
	"time"
)

// Sentinel errors shared by the mutation engine, the offline queue and the undo log.
var (
	// Capacity errors
	ErrSlotFull       = New("slot is full")
	ErrSlotJustFilled = New("slot just filled up")

	// Uniqueness / eligibility errors
	ErrAlreadyBooked     = New("already booked for this day")
	ErrRestrictionActive = New("restriction active")

	// Remote store errors
	ErrRemoteUnavailable = New("remote store unavailable")
	ErrRemoteRejected    = New("remote store rejected the change")

	// Lookup / state errors
	ErrNotFound          = New("not found")
	ErrInvalidTransition = New("invalid status transition")
	ErrInvalidInput      = New("invalid input")
	ErrStaleAction       = New("record changed since this action")

	// Edit failures that were rolled back locally
	ErrRolledBack = New("changes were reverted")
)

// SlotJustFilled reports a lost race: the slot had room locally but the
// authoritative count (or the store itself) says it is now full.
func SlotJustFilled(slotKey string) error {
	return Mark(Wrapf(ErrSlotJustFilled, "slot %s", slotKey), ErrSlotFull)
}

// RestrictionError carries what the operator needs to see when a guest is blocked.
type RestrictionError struct {
	SubjectID   string
	DisplayName string
	Service     string
	Until       time.Time
	Reason      string
	Location    *time.Location
}

func (e *RestrictionError) Error() string {
	loc := e.Location
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	name := e.DisplayName
	if name == "" {
		name = "guest"
	}
	fmt.Fprintf(&b, "%s is restricted", name)
	if e.Service != "" {
		fmt.Fprintf(&b, " from %s", e.Service)
	}
	fmt.Fprintf(&b, " until %s", e.Until.In(loc).Format("Jan 2, 2006"))
	if r := strings.TrimSpace(e.Reason); r != "" {
		fmt.Fprintf(&b, ": %s", r)
	}
	return b.String()
}

func (e *RestrictionError) Is(target error) bool {
	return target == ErrRestrictionActive
}
