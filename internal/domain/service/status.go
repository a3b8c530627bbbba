package service

type Status string

const (
	// shower
	StatusAwaiting   Status = "awaiting"
	StatusWaitlisted Status = "waitlisted"

	// laundry on-site
	StatusWaiting  Status = "waiting"
	StatusWasher   Status = "washer"
	StatusDryer    Status = "dryer"
	StatusPickedUp Status = "picked_up"

	// laundry off-site
	StatusTransported     Status = "transported"
	StatusOffsitePickedUp Status = "offsite_picked_up"

	// bicycle repair / off-site laundry
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"

	// shared
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// IsActive is false only for cancelled records; done and picked-up records
// still count toward daily uniqueness.
func IsActive(s Status) bool {
	return s != StatusCancelled && s != ""
}

// OccupiesSlot reports whether a record in status s takes one unit of slot capacity.
func OccupiesSlot(s Status) bool {
	return IsActive(s) && s != StatusWaitlisted
}

type transitions map[Status][]Status

var (
	showerFlow = transitions{
		StatusAwaiting:   {StatusDone, StatusCancelled},
		StatusWaitlisted: {StatusDone, StatusCancelled},
	}
	laundryOnsiteFlow = transitions{
		StatusWaiting: {StatusWasher, StatusCancelled},
		StatusWasher:  {StatusDryer, StatusCancelled},
		StatusDryer:   {StatusDone, StatusCancelled},
		StatusDone:    {StatusPickedUp, StatusCancelled},
	}
	laundryOffsiteFlow = transitions{
		StatusPending:     {StatusTransported, StatusCancelled},
		StatusTransported: {StatusOffsitePickedUp, StatusCancelled},
	}
	bicycleFlow = transitions{
		StatusPending:    {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusDone, StatusCancelled},
	}
	logFlow = transitions{
		StatusDone: {StatusCancelled},
	}
)

func flowFor(t Type, mode LaundryMode) transitions {
	switch t {
	case TypeShower:
		return showerFlow
	case TypeLaundry:
		if mode == LaundryOffsite {
			return laundryOffsiteFlow
		}
		return laundryOnsiteFlow
	case TypeBicycle:
		return bicycleFlow
	case TypeMeal, TypeDonation, TypeItem:
		return logFlow
	}
	return nil
}

// CanTransition reports whether from → to is a legal step for the record kind.
func CanTransition(t Type, mode LaundryMode, from, to Status) bool {
	for _, next := range flowFor(t, mode)[from] {
		if next == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether s belongs to the state machine of the record kind.
func KnownStatus(t Type, mode LaundryMode, s Status) bool {
	if s == StatusCancelled {
		return true
	}
	flow := flowFor(t, mode)
	if _, ok := flow[s]; ok {
		return true
	}
	for _, nexts := range flow {
		for _, n := range nexts {
			if n == s {
				return true
			}
		}
	}
	return false
}

// InitialStatus is the status a freshly created record starts in.
func InitialStatus(t Type, mode LaundryMode) Status {
	switch t {
	case TypeShower:
		return StatusAwaiting
	case TypeLaundry:
		if mode == LaundryOffsite {
			return StatusPending
		}
		return StatusWaiting
	case TypeBicycle:
		return StatusPending
	}
	return StatusDone
}

// IsCompletion reports whether reaching s finishes the service for the guest.
func IsCompletion(t Type, mode LaundryMode, s Status) bool {
	switch t {
	case TypeLaundry:
		if mode == LaundryOffsite {
			return s == StatusOffsitePickedUp
		}
		return s == StatusPickedUp
	case TypeShower, TypeBicycle:
		return s == StatusDone
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func IsTerminal(t Type, mode LaundryMode, s Status) bool {
	return len(flowFor(t, mode)[s]) == 0
}
