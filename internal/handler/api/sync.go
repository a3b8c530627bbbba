package api

import (
	"net/http"
	"strconv"

	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/usecase/offline"
	"checkin-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	flusher offline.Flusher
	q       queries.BoardQueries
}

func NewSyncHandler(flusher offline.Flusher, q queries.BoardQueries) *SyncHandler {
	return &SyncHandler{flusher: flusher, q: q}
}

// @Summary Sync status
// @Description Store liveness, pending offline entries and last-synced markers per resource
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SyncStatusResponse
// @Router /sync/status [get]
func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSyncStatus(h.q.SyncStatus(c.Request.Context())))
}

// @Summary Flush offline queue
// @Description Drains queued creations now instead of waiting for the worker
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlushResponse
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /sync/flush [post]
func (h *SyncHandler) Flush(c *gin.Context) {
	res, err := h.flusher.Flush(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err, "Flush failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlushResult(res))
}

// @Summary Recent notices
// @Description Operator notices, newest first
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max notices (max 50)"
// @Success 200 {array} resdto.NoticeResponse
// @Failure 400 {object} httperr.Response
// @Router /notices [get]
func (h *SyncHandler) Notices(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, resdto.FromNotices(h.q.Notices(c.Request.Context(), limit)))
}
