package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionName = "bakery"

func NewRouter(h *Handler, store sessions.Store) *gin.Engine {
	r := gin.New()

	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(RequestID())

	// ── session store ──
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// ── customers ──
	r.GET("/customers", h.ListCustomers)
	r.GET("/customers/status", h.CustomerStatus)
	r.GET("/search", h.SearchCustomers)
	r.POST("/customer/add", h.CreateCustomer)
	r.GET("/customer/:id", h.GetCustomer)
	r.DELETE("/customer/:id/delete", h.DeleteCustomer)
	r.POST("/customer/:id/notify", h.NotifyCustomer)

	// ── orders ──
	r.POST("/customer/:id/add-order", h.CreateOrder)
	r.POST("/customer/:id/add-orders", h.CreateOrders)
	r.PUT("/order/:id/mark-delivered", h.MarkDelivered)
	r.DELETE("/order/:id/delete", h.DeleteOrder)
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		r.Handle(method, "/orders/mark-all-delivered", h.MarkAllDelivered)
	}

	// ── products ──
	r.GET("/products", h.ListProducts)
	r.GET("/products/ensure-defaults", h.EnsureDefaultProducts)
	r.POST("/products/ensure-defaults", h.EnsureDefaultProducts)

	return r
}
