package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/utils"
)

type CreateOrderRequest struct {
	ProductID *utils.LenientInt `json:"product_id"`
	Quantity  *utils.LenientInt `json:"quantity"`
}

// CreateOrdersRequest keeps items raw so that one unreadable item does not
// reject the whole batch.
type CreateOrdersRequest struct {
	Items []json.RawMessage `json:"items"`
}

type BatchItemRequest struct {
	ProductID utils.LenientInt `json:"product_id"`
	Quantity  utils.LenientInt `json:"quantity"`
}

// POST /customer/:id/add-order
func (h *Handler) CreateOrder(c *gin.Context) {
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.ProductID == nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
		return
	}
	if !req.ProductID.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
		return
	}
	if !req.Quantity.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a number"})
		return
	}

	order, err := h.ledger.AddOrder(c.Request.Context(), customerID, req.ProductID.ID(), int(req.Quantity.Value))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": order.ID})
}

// POST /customer/:id/add-orders
func (h *Handler) CreateOrders(c *gin.Context) {
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CreateOrdersRequest

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items list is required"})
		return
	}

	items := make([]ledger.BatchItem, 0, len(req.Items))
	for _, raw := range req.Items {
		items = append(items, toBatchItem(raw))
	}

	inserted, err := h.ledger.AddOrdersBatch(c.Request.Context(), customerID, items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inserted": inserted})
}

func toBatchItem(raw json.RawMessage) ledger.BatchItem {
	var item BatchItemRequest
	if err := json.Unmarshal(raw, &item); err != nil {
		return ledger.BatchItem{Malformed: true}
	}
	if !item.ProductID.Valid || !item.Quantity.Valid {
		return ledger.BatchItem{Malformed: true}
	}

	return ledger.BatchItem{
		ProductID: item.ProductID.ID(),
		Quantity:  int(item.Quantity.Value),
	}
}

// PUT /order/:id/mark-delivered
func (h *Handler) MarkDelivered(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.ledger.MarkDelivered(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET|POST|PUT /orders/mark-all-delivered
func (h *Handler) MarkAllDelivered(c *gin.Context) {
	updated, err := h.ledger.MarkAllDelivered(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

// DELETE /order/:id/delete
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.ledger.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
