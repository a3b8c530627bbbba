package service

// Type is the kind of service a record tracks.
type Type string

const (
	TypeShower   Type = "shower"
	TypeLaundry  Type = "laundry"
	TypeBicycle  Type = "bicycle"
	TypeMeal     Type = "meal"
	TypeDonation Type = "donation"
	TypeItem     Type = "item"
)

var AllTypes = []Type{TypeShower, TypeLaundry, TypeBicycle, TypeMeal, TypeDonation, TypeItem}

func (t Type) Valid() bool {
	switch t {
	case TypeShower, TypeLaundry, TypeBicycle, TypeMeal, TypeDonation, TypeItem:
		return true
	}
	return false
}

// DailyUnique reports whether a subject may hold at most one active record of
// this type per calendar day.
func (t Type) DailyUnique() bool {
	switch t {
	case TypeShower, TypeLaundry, TypeBicycle:
		return true
	}
	return false
}

// IsLog reports whether t is a generic log kind (created done, no slot).
func (t Type) IsLog() bool {
	switch t {
	case TypeMeal, TypeDonation, TypeItem:
		return true
	}
	return false
}

// Label is the operator-facing name used in notices and restriction messages.
func (t Type) Label() string {
	switch t {
	case TypeShower:
		return "showers"
	case TypeLaundry:
		return "laundry"
	case TypeBicycle:
		return "bicycle repairs"
	case TypeMeal:
		return "meals"
	case TypeDonation:
		return "donations"
	case TypeItem:
		return "items"
	}
	return string(t)
}

func (t Type) Resource() Resource {
	switch t {
	case TypeShower:
		return ResourceShowers
	case TypeLaundry:
		return ResourceLaundry
	case TypeBicycle:
		return ResourceBicycles
	case TypeMeal:
		return ResourceMeals
	case TypeDonation:
		return ResourceDonations
	case TypeItem:
		return ResourceItems
	}
	return ""
}

// Resource is a collection in the remote store and the unit the sync trigger
// tracks freshness for.
type Resource string

const (
	ResourceShowers   Resource = "showers"
	ResourceLaundry   Resource = "laundry"
	ResourceBicycles  Resource = "bicycles"
	ResourceMeals     Resource = "meals"
	ResourceDonations Resource = "donations"
	ResourceItems     Resource = "items"
	ResourceSubjects  Resource = "subjects"
)

var AllResources = []Resource{
	ResourceShowers, ResourceLaundry, ResourceBicycles,
	ResourceMeals, ResourceDonations, ResourceItems, ResourceSubjects,
}

func (r Resource) Valid() bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}

type LaundryMode string

const (
	LaundryOnsite  LaundryMode = "onsite"
	LaundryOffsite LaundryMode = "offsite"
)

func (m LaundryMode) Valid() bool {
	return m == LaundryOnsite || m == LaundryOffsite
}
