package api

import (
	"net/http"
	"time"

	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RestrictionDetail is the body detail of a 403 for a restricted guest.
type RestrictionDetail struct {
	SubjectID   string `json:"subjectId"`
	DisplayName string `json:"displayName,omitempty"`
	Service     string `json:"service,omitempty"`
	Until       string `json:"until"`
	Reason      string `json:"reason,omitempty"`
}

// abortWithDomainError maps engine errors to responses. Order matters:
// SlotJustFilled is also SlotFull, and RolledBack wraps the remote cause.
func abortWithDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrSlotJustFilled):
		httperr.AbortWithError(c, http.StatusConflict, err, "This slot just filled up", nil)
	case errs.Is(err, errs.ErrSlotFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is full", nil)
	case errs.Is(err, errs.ErrAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already booked for this day", nil)
	case errs.Is(err, errs.ErrRestrictionActive):
		var re *errs.RestrictionError
		if errs.As(err, &re) {
			httperr.AbortWithError(c, http.StatusForbidden, err, re.Error(), RestrictionDetail{
				SubjectID:   re.SubjectID,
				DisplayName: re.DisplayName,
				Service:     re.Service,
				Until:       re.Until.Format(time.RFC3339),
				Reason:      re.Reason,
			})
			return
		}
		httperr.AbortWithError(c, http.StatusForbidden, err, "Guest is restricted", nil)
	case errs.Is(err, errs.ErrStaleAction):
		httperr.AbortWithError(c, http.StatusConflict, err, "Record changed since this action", nil)
	case errs.Is(err, errs.ErrRolledBack):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Changes were reverted", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrRemoteUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Store unavailable, try again", nil)
	case errs.Is(err, errs.ErrRemoteRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Store rejected the change", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
