package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

// OrderLine is an order joined with the product it refers to.
type OrderLine struct {
	ID           uint                `json:"id"`
	ProductID    uint                `json:"product_id"`
	Name         string              `json:"name"`
	Price        float64             `json:"price"`
	Quantity     int                 `json:"quantity"`
	Delivered    bool                `json:"delivered"`
	DeliveryDate models.DeliveryDate `json:"delivery_date"`
}

// CustomerDetail is a customer with every order it owns. TotalPrice only
// counts orders that are still pending.
type CustomerDetail struct {
	models.Customer
	Orders     []OrderLine `json:"orders"`
	TotalPrice float64     `json:"total_price"`
}

func (l *Ledger) ListCustomers(ctx context.Context, date models.DeliveryDate) ([]models.Customer, error) {
	customers := []models.Customer{}

	err := l.conn(ctx).
		Where("delivery_date = ?", date).
		Order(l.byName("name")).
		Order("id").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for %s: %w", date, err)
	}

	return customers, nil
}

// AddCustomer registers a customer for a delivery date. An empty date falls
// back to the default label.
func (l *Ledger) AddCustomer(ctx context.Context, name, phone string, date models.DeliveryDate) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}

	customer := models.Customer{
		Name:         name,
		Phone:        phone,
		DeliveryDate: date.OrDefault(models.DefaultDeliveryDate),
	}

	if err := l.conn(ctx).Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: phone %s already registered for %s", ErrDuplicateKey, phone, customer.DeliveryDate)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

// DeleteCustomer removes the customer together with all of its orders.
// Unknown ids are not an error.
func (l *Ledger) DeleteCustomer(ctx context.Context, id uint) error {
	return l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete orders of customer %d: %w", id, err)
		}
		if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete customer %d: %w", id, err)
		}
		return nil
	})
}

func (l *Ledger) CustomerDetail(ctx context.Context, id uint) (*CustomerDetail, error) {
	db := l.conn(ctx)

	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}

	lines := []OrderLine{}
	err := db.Table("orders AS o").
		Select("o.id, o.product_id, p.name, p.price, o.quantity, o.delivered, o.delivery_date").
		Joins("JOIN products AS p ON o.product_id = p.id").
		Where("o.customer_id = ?", id).
		Order(l.byName("p.name")).
		Order("o.id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders of customer %d: %w", id, err)
	}

	return &CustomerDetail{
		Customer:   customer,
		Orders:     lines,
		TotalPrice: pendingTotal(lines),
	}, nil
}

func pendingTotal(lines []OrderLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		if line.Delivered {
			continue
		}
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.InexactFloat64()
}

// SearchCustomers matches query as a substring of the name or the phone.
// LIKE wildcards inside query are passed through.
func (l *Ledger) SearchCustomers(ctx context.Context, query string, date models.DeliveryDate) ([]models.Customer, error) {
	pattern := "%" + query + "%"
	op := l.likeOp()

	customers := []models.Customer{}
	err := l.conn(ctx).
		Where(fmt.Sprintf("(name %s ? OR phone %s ?) AND delivery_date = ?", op, op), pattern, pattern, date).
		Order(l.byName("name")).
		Order("id").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, nil
}
