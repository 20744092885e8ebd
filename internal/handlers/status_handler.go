package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /customers/status
func (h *Handler) CustomerStatus(c *gin.Context) {
	report, err := h.ledger.CustomerStatus(c.Request.Context(), h.deliveryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
