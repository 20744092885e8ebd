package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
	"github.com/Keoroanthony/bakery-ledger/internal/notifier"
)

type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	DeliveryDate string `json:"delivery_date"`
}

// GET /customers
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.ledger.ListCustomers(c.Request.Context(), h.deliveryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// POST /customer/add
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}

	date := models.DeliveryDate(req.DeliveryDate).OrDefault(h.defaultDate)

	customer, err := h.ledger.AddCustomer(c.Request.Context(), req.Name, req.Phone, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DELETE /customer/:id/delete
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.ledger.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /customer/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.ledger.CustomerDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GET /search
func (h *Handler) SearchCustomers(c *gin.Context) {
	customers, err := h.ledger.SearchCustomers(c.Request.Context(), c.Query("q"), h.deliveryDate(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// POST /customer/:id/notify
func (h *Handler) NotifyCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	detail, err := h.ledger.CustomerDetail(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !hasPendingOrders(detail) {
		c.JSON(http.StatusOK, gin.H{"success": true, "sent": false})
		return
	}

	message := notifier.ReminderMessage(detail.Name, detail.DeliveryDate, detail.TotalPrice)
	if err := h.sms.SendSMS(ctx, detail.Phone, message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sent": true})
}

func hasPendingOrders(detail *ledger.CustomerDetail) bool {
	for _, order := range detail.Orders {
		if !order.Delivered {
			return true
		}
	}
	return false
}
