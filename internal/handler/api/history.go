package api

import (
	"net/http"
	"strconv"

	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/usecase/history"
	"checkin-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	undo history.UndoCommands
	q    queries.BoardQueries
}

func NewHistoryHandler(undo history.UndoCommands, q queries.BoardQueries) *HistoryHandler {
	return &HistoryHandler{undo: undo, q: q}
}

// @Summary List action history
// @Description Reversible actions, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 50)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.HistoryListResponse
// @Failure 400 {object} httperr.Response
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var after *queries.Cursor
	if cur := c.Query("after"); cur != "" {
		after = &queries.Cursor{After: cur}
	}

	entries, next, err := h.q.History(c.Request.Context(), after, limit)
	if err != nil {
		abortWithDomainError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(entries, next))
}

// @Summary Undo action
// @Description Reverts one history entry. Undoing an entry that is already gone is a no-op
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Success 200 {object} resdto.UndoResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /history/{id}/undo [post]
func (h *HistoryHandler) Undo(c *gin.Context) {
	undone, err := h.undo.Undo(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err, "Undo failed")
		return
	}
	c.JSON(http.StatusOK, resdto.UndoResponse{Undone: undone})
}
