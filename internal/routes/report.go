package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetLedgerReport(c *gin.Context) {
	filters, err := parseContributionFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rep, err := h.ReportService.Ledger(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}
