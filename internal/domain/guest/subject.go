package guest

import (
	"strings"
	"time"

	"checkin-core/internal/domain/service"

	"github.com/jinzhu/copier"
)

// Subject is the guest a record belongs to. Only the restriction fields matter
// to booking; identity lives in the intake system.
type Subject struct {
	ID                 string         `json:"id"`
	DisplayName        string         `json:"displayName"`
	RestrictedUntil    *time.Time     `json:"restrictedUntil,omitempty"`
	RestrictionReason  string         `json:"restrictionReason,omitempty"`
	RestrictedServices []service.Type `json:"restrictedServices,omitempty"`
	LastUpdated        time.Time      `json:"lastUpdated"`
}

func (s Subject) Clone() Subject {
	var out Subject
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return out
}

// Covers reports whether the restriction applies to t. An empty service list
// restricts everything.
func (s Subject) Covers(t service.Type) bool {
	if len(s.RestrictedServices) == 0 {
		return true
	}
	for _, rs := range s.RestrictedServices {
		if rs == t {
			return true
		}
	}
	return false
}

// RestrictedAt reports whether an active restriction blocks t at now.
// A restriction ending exactly at now has lapsed.
func (s Subject) RestrictedAt(now time.Time, t service.Type) bool {
	if s.RestrictedUntil == nil || !s.RestrictedUntil.After(now) {
		return false
	}
	return s.Covers(t)
}

// Patch is a partial profile or ban edit. Nil fields are left as they are.
type Patch struct {
	SubjectID          string
	DisplayName        *string
	RestrictedUntil    *time.Time
	RestrictionReason  *string
	RestrictedServices *[]service.Type
	ClearRestriction   bool
}

func (p Patch) Empty() bool {
	return p.DisplayName == nil && p.RestrictedUntil == nil && p.RestrictionReason == nil &&
		p.RestrictedServices == nil && !p.ClearRestriction
}

// Apply returns s with p applied. Clearing a restriction wins over any
// restriction fields set in the same patch.
func (s Subject) Apply(p Patch, now time.Time) Subject {
	out := s.Clone()
	if p.DisplayName != nil {
		out.DisplayName = strings.TrimSpace(*p.DisplayName)
	}
	if p.RestrictedUntil != nil {
		until := *p.RestrictedUntil
		out.RestrictedUntil = &until
	}
	if p.RestrictionReason != nil {
		out.RestrictionReason = strings.TrimSpace(*p.RestrictionReason)
	}
	if p.RestrictedServices != nil {
		out.RestrictedServices = append([]service.Type(nil), (*p.RestrictedServices)...)
	}
	if p.ClearRestriction {
		out.RestrictedUntil = nil
		out.RestrictionReason = ""
		out.RestrictedServices = nil
	}
	out.LastUpdated = now
	return out
}
