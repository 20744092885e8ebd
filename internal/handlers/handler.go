package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
	"github.com/Keoroanthony/bakery-ledger/internal/notifier"
)

const deliveryDateKey = "delivery_date"

// Ledger is the set of ledger operations the HTTP surface exposes.
type Ledger interface {
	ListCustomers(ctx context.Context, date models.DeliveryDate) ([]models.Customer, error)
	AddCustomer(ctx context.Context, name, phone string, date models.DeliveryDate) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	CustomerDetail(ctx context.Context, id uint) (*ledger.CustomerDetail, error)
	SearchCustomers(ctx context.Context, query string, date models.DeliveryDate) ([]models.Customer, error)

	ListProductsWithDemand(ctx context.Context, date models.DeliveryDate) ([]ledger.ProductDemand, error)
	EnsureDefaultProducts(ctx context.Context) (int64, error)

	AddOrder(ctx context.Context, customerID, productID uint, quantity int) (*models.Order, error)
	AddOrdersBatch(ctx context.Context, customerID uint, items []ledger.BatchItem) (int, error)
	MarkDelivered(ctx context.Context, orderID uint) error
	MarkAllDelivered(ctx context.Context) (int64, error)
	DeleteOrder(ctx context.Context, orderID uint) error

	CustomerStatus(ctx context.Context, date models.DeliveryDate) (*ledger.StatusReport, error)
}

type Handler struct {
	ledger      Ledger
	sms         notifier.SMSSender
	defaultDate models.DeliveryDate
}

func New(l Ledger, sms notifier.SMSSender, defaultDate models.DeliveryDate) *Handler {
	return &Handler{
		ledger:      l,
		sms:         sms,
		defaultDate: defaultDate.OrDefault(models.DefaultDeliveryDate),
	}
}

// deliveryDate resolves the delivery-date filter of a request: the query
// parameter, then the one remembered in the session, then the default. A
// filter given in the query is remembered for the next request.
func (h *Handler) deliveryDate(c *gin.Context) models.DeliveryDate {
	sess := sessions.Default(c)

	if q := c.Query(deliveryDateKey); q != "" {
		sess.Set(deliveryDateKey, q)
		if err := sess.Save(); err != nil {
			log.Printf("Failed to save session: %v", err)
		}
		return models.DeliveryDate(q)
	}

	if remembered, ok := sess.Get(deliveryDateKey).(string); ok && remembered != "" {
		return models.DeliveryDate(remembered)
	}

	return h.defaultDate
}

// pathID reads a numeric path parameter. Anything that is not an unsigned
// integer cannot name a row, so the route answers 404.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrInvalidReference),
		errors.Is(err, ledger.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
