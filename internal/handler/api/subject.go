package api

import (
	"net/http"

	reqdto "checkin-core/internal/handler/dto/request"
	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	cmds commands.ServiceCommands
}

func NewSubjectHandler(cmds commands.ServiceCommands) *SubjectHandler {
	return &SubjectHandler{cmds: cmds}
}

// @Summary Update guest restriction or profile
// @Description Staff only. Omitted fields are left unchanged
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param request body reqdto.UpdateSubjectRequest true "Patch"
// @Success 200 {object} resdto.SubjectResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /subjects/{id} [patch]
func (h *SubjectHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sub, err := h.cmds.UpdateSubject(c.Request.Context(), req.ToPatch(c.Param("id")))
	if err != nil {
		abortWithDomainError(c, err, "Failed to update subject")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubject(sub))
}
