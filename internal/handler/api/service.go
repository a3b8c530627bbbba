package api

import (
	"net/http"
	"time"

	"checkin-core/internal/domain/service"
	reqdto "checkin-core/internal/handler/dto/request"
	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/usecase/commands"
	"checkin-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds  commands.ServiceCommands
	q     queries.BoardQueries
	today func() string
}

// NewServiceHandler takes today so list endpoints default to the center's
// date rather than the server's.
func NewServiceHandler(cmds commands.ServiceCommands, q queries.BoardQueries, today func() string) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q, today: today}
}

// @Summary Book shower
// @Description Book a shower slot. Returns 202 when the store is offline and the booking was queued
// @Tags showers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookShowerRequest true "Shower booking"
// @Success 201 {object} resdto.CreateRecordResponse
// @Success 202 {object} resdto.CreateRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /showers [post]
func (h *ServiceHandler) BookShower(c *gin.Context) {
	var req reqdto.BookShowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.BookShower(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to book shower")
		return
	}
	respondCreated(c, res)
}

// @Summary Join shower waitlist
// @Tags showers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WaitlistRequest true "Waitlist entry"
// @Success 201 {object} resdto.CreateRecordResponse
// @Success 202 {object} resdto.CreateRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /showers/waitlist [post]
func (h *ServiceHandler) JoinWaitlist(c *gin.Context) {
	var req reqdto.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.JoinShowerWaitlist(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to join waitlist")
		return
	}
	respondCreated(c, res)
}

// @Summary Book laundry
// @Description On-site laundry needs a slot; off-site laundry has none
// @Tags laundry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookLaundryRequest true "Laundry booking"
// @Success 201 {object} resdto.CreateRecordResponse
// @Success 202 {object} resdto.CreateRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /laundry [post]
func (h *ServiceHandler) BookLaundry(c *gin.Context) {
	var req reqdto.BookLaundryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.BookLaundry(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to book laundry")
		return
	}
	respondCreated(c, res)
}

// @Summary Log bicycle repair
// @Tags bicycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BicycleRepairRequest true "Repair"
// @Success 201 {object} resdto.CreateRecordResponse
// @Success 202 {object} resdto.CreateRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bicycles [post]
func (h *ServiceHandler) LogBicycleRepair(c *gin.Context) {
	var req reqdto.BicycleRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.LogBicycleRepair(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to log repair")
		return
	}
	respondCreated(c, res)
}

// @Summary Log meal, donation or item
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LogServiceRequest true "Log entry"
// @Success 201 {object} resdto.CreateRecordResponse
// @Success 202 {object} resdto.CreateRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /logs [post]
func (h *ServiceHandler) LogService(c *gin.Context) {
	var req reqdto.LogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.LogService(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to log service")
		return
	}
	respondCreated(c, res)
}

// @Summary List records
// @Description Records for a day, including ones still waiting to sync
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param type query string false "Service type"
// @Success 200 {array} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Router /records [get]
func (h *ServiceHandler) ListRecords(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	records, err := h.q.Records(c.Request.Context(), date, service.Type(c.Query("type")))
	if err != nil {
		abortWithDomainError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}

// @Summary Slot occupancy
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param type path string true "shower or laundry"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /slots/{type} [get]
func (h *ServiceHandler) ListSlots(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	occ, err := h.q.Slots(c.Request.Context(), service.Type(c.Param("type")), date)
	if err != nil {
		abortWithDomainError(c, err, "Failed to load slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancy(occ))
}

// @Summary Update record status
// @Description Advances the record through its state machine. A failed save is reverted and returns 502
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /records/{id}/status [patch]
func (h *ServiceHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), service.Status(req.Status))
	if err != nil {
		abortWithDomainError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}

// @Summary Reschedule shower
// @Tags showers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.RescheduleRequest true "New slot"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /records/{id}/slot [patch]
func (h *ServiceHandler) Reschedule(c *gin.Context) {
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.RescheduleShower(c.Request.Context(), c.Param("id"), req.SlotKey)
	if err != nil {
		abortWithDomainError(c, err, "Failed to reschedule")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}

// @Summary Update laundry bag number
// @Tags laundry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.BagNumberRequest true "Bag number"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /records/{id}/bag [patch]
func (h *ServiceHandler) UpdateBagNumber(c *gin.Context) {
	var req reqdto.BagNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.UpdateBagNumber(c.Request.Context(), c.Param("id"), req.BagNumber)
	if err != nil {
		abortWithDomainError(c, err, "Failed to update bag number")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}

// @Summary Cancel record
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.RecordResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /records/{id} [delete]
func (h *ServiceHandler) CancelRecord(c *gin.Context) {
	rec, err := h.cmds.CancelRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err, "Failed to cancel record")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}

func (h *ServiceHandler) dateParam(c *gin.Context) (string, bool) {
	d := c.Query("date")
	if d == "" {
		return h.today(), true
	}
	if _, err := time.Parse(time.DateOnly, d); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return "", false
	}
	return d, true
}

func respondCreated(c *gin.Context, res commands.Result) {
	status := http.StatusCreated
	if res.Queued {
		status = http.StatusAccepted
	} else {
		c.Header("Location", "/api/records/"+res.Record.ID)
	}
	c.JSON(status, resdto.FromResult(res))
}
