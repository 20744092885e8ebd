package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ledger.ListProductsWithDemand(c.Request.Context(), h.deliveryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET|POST /products/ensure-defaults
func (h *Handler) EnsureDefaultProducts(c *gin.Context) {
	added, err := h.ledger.EnsureDefaultProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "added": added})
}
