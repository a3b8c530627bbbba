package history

import (
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultLimit = 50

var ErrUnknownAction = errs.New("unknown history action")

// ActionType is the closed set of reversible mutations.
type ActionType string

const (
	ActionShowerBooked      ActionType = "SHOWER_BOOKED"
	ActionShowerWaitlisted  ActionType = "SHOWER_WAITLISTED"
	ActionLaundryBooked     ActionType = "LAUNDRY_BOOKED"
	ActionBicycleLogged     ActionType = "BICYCLE_LOGGED"
	ActionMealLogged        ActionType = "MEAL_LOGGED"
	ActionDonationLogged    ActionType = "DONATION_LOGGED"
	ActionItemGiven         ActionType = "ITEM_GIVEN"
	ActionRecordCancelled   ActionType = "RECORD_CANCELLED"
	ActionShowerRescheduled ActionType = "SHOWER_RESCHEDULED"
	ActionStatusChanged     ActionType = "STATUS_CHANGED"
)

// CreationAction maps a record type to the action recorded when it is created.
func CreationAction(t service.Type, status service.Status) ActionType {
	switch t {
	case service.TypeShower:
		if status == service.StatusWaitlisted {
			return ActionShowerWaitlisted
		}
		return ActionShowerBooked
	case service.TypeLaundry:
		return ActionLaundryBooked
	case service.TypeBicycle:
		return ActionBicycleLogged
	case service.TypeMeal:
		return ActionMealLogged
	case service.TypeDonation:
		return ActionDonationLogged
	case service.TypeItem:
		return ActionItemGiven
	}
	return ""
}

// Payload holds everything needed to invert the action without the live state.
type Payload struct {
	RecordID       string           `json:"recordId"`
	Resource       service.Resource `json:"resource"`
	Before         *service.Record  `json:"before,omitempty"`
	After          *service.Record  `json:"after,omitempty"`
	PreviousSlot   *string          `json:"previousSlot,omitempty"`
	NewSlot        *string          `json:"newSlot,omitempty"`
	PreviousStatus service.Status   `json:"previousStatus,omitempty"`
	NewStatus      service.Status   `json:"newStatus,omitempty"`
}

type Entry struct {
	ID          string     `json:"id"`
	Type        ActionType `json:"type"`
	Timestamp   time.Time  `json:"timestamp"`
	Data        Payload    `json:"data"`
	Description string     `json:"description"`
	Actor       string     `json:"actor,omitempty"`
}

func NewEntry(t ActionType, at time.Time, data Payload, description, actor string) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Type:        t,
		Timestamp:   at,
		Data:        data,
		Description: description,
		Actor:       actor,
	}
}

// InverseKind names the operation that reverts an entry.
type InverseKind string

const (
	InverseDelete       InverseKind = "delete"
	InverseRestore      InverseKind = "restore"
	InverseReschedule   InverseKind = "reschedule"
	InverseRevertStatus InverseKind = "revert_status"
)

// Inverse describes how to undo an entry. Before is the record as it must look
// after the undo for Restore, Reschedule and RevertStatus. Expect and
// ExpectSlot describe the record as the action left it; an empty Expect skips
// the check (entries journaled without it).
type Inverse struct {
	Kind       InverseKind
	RecordID   string
	Resource   service.Resource
	Before     *service.Record
	Slot       *string
	Status     service.Status
	Expect     service.Status
	ExpectSlot *string
}

func InverseOf(e Entry) (Inverse, error) {
	inv := Inverse{RecordID: e.Data.RecordID, Resource: e.Data.Resource}

	switch e.Type {
	case ActionShowerBooked, ActionShowerWaitlisted, ActionLaundryBooked, ActionBicycleLogged,
		ActionMealLogged, ActionDonationLogged, ActionItemGiven:
		inv.Kind = InverseDelete
	case ActionRecordCancelled:
		if e.Data.Before == nil {
			return Inverse{}, errs.Wrapf(ErrUnknownAction, "%s %s has no snapshot", e.Type, e.ID)
		}
		inv.Kind = InverseRestore
		inv.Before = e.Data.Before
		inv.Status = e.Data.Before.Status
		inv.Expect = e.Data.NewStatus
	case ActionShowerRescheduled:
		inv.Kind = InverseReschedule
		inv.Before = e.Data.Before
		inv.Slot = e.Data.PreviousSlot
		inv.Status = e.Data.PreviousStatus
		inv.Expect = e.Data.NewStatus
		inv.ExpectSlot = e.Data.NewSlot
	case ActionStatusChanged:
		inv.Kind = InverseRevertStatus
		inv.Before = e.Data.Before
		inv.Status = e.Data.PreviousStatus
		inv.Expect = e.Data.NewStatus
	default:
		return Inverse{}, errs.Wrapf(ErrUnknownAction, "%q", e.Type)
	}
	return inv, nil
}
