package routes

import (
	"net/http"

	"github.com/AhmedHodiani/slicing-pie/internal/contracts"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	board, err := h.DashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// ProjectContribution responde o cenário hipotético "e se eu aportasse X",
// sem gravar nada.
func (h *Handler) ProjectContribution(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ProjectionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	projection, err := h.DashboardService.Project(c.Request.Context(), userID, body.Amount, equity.Category(body.Category))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}
