package request

import (
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
)

// UpdateSubjectRequest is a partial edit. Omitted fields are left unchanged;
// clearRestriction lifts any ban.
type UpdateSubjectRequest struct {
	DisplayName        *string    `json:"displayName,omitempty" binding:"omitempty,min=1,max=100"`
	RestrictedUntil    *time.Time `json:"restrictedUntil,omitempty"`
	RestrictionReason  *string    `json:"restrictionReason,omitempty" binding:"omitempty,max=500"`
	RestrictedServices *[]string  `json:"restrictedServices,omitempty" binding:"omitempty,dive,oneof=shower laundry bicycle meal donation item"`
	ClearRestriction   bool       `json:"clearRestriction,omitempty"`
}

func (r UpdateSubjectRequest) ToPatch(subjectID string) guest.Patch {
	p := guest.Patch{
		SubjectID:         subjectID,
		DisplayName:       r.DisplayName,
		RestrictedUntil:   r.RestrictedUntil,
		RestrictionReason: r.RestrictionReason,
		ClearRestriction:  r.ClearRestriction,
	}
	if r.RestrictedServices != nil {
		types := make([]service.Type, 0, len(*r.RestrictedServices))
		for _, s := range *r.RestrictedServices {
			types = append(types, service.Type(s))
		}
		p.RestrictedServices = &types
	}
	return p
}
