package ledger

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

// BatchItem is one requested line of a batch order. Malformed is set when the
// request carried a product id or quantity that could not be read as an
// integer.
type BatchItem struct {
	ProductID uint
	Quantity  int
	Malformed bool
}

// AddOrder places a single order. The order is stored under the schema's
// default delivery date even when the customer belongs to another one;
// callers that need the customer's date use AddOrdersBatch.
func (l *Ledger) AddOrder(ctx context.Context, customerID, productID uint, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}

	var order models.Order
	err := l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Customer{}, customerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
		}

		found, err = exists(tx, &models.Product{}, productID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: product %d does not exist", ErrInvalidReference, productID)
		}

		order = models.Order{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Pick up the column defaults.
		return tx.First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AddOrdersBatch places every usable item for the customer and returns how
// many orders were stored. Malformed items, non-positive quantities and
// unknown products are skipped. Stored orders take the customer's current
// delivery date.
func (l *Ledger) AddOrdersBatch(ctx context.Context, customerID uint, items []BatchItem) (int, error) {
	inserted := 0

	err := l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
			}
			return fmt.Errorf("failed to load customer %d: %w", customerID, err)
		}

		for _, item := range items {
			if item.Malformed || item.Quantity <= 0 {
				continue
			}

			found, err := exists(tx, &models.Product{}, item.ProductID)
			if err != nil {
				return err
			}
			if !found {
				continue
			}

			order := models.Order{
				CustomerID:   customer.ID,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				DeliveryDate: customer.DeliveryDate,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// MarkDelivered flags one order as delivered. Unknown ids are ignored.
func (l *Ledger) MarkDelivered(ctx context.Context, orderID uint) error {
	err := l.conn(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("delivered", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark order %d delivered: %w", orderID, err)
	}
	return nil
}

// MarkAllDelivered flags every order in the ledger as delivered, across all
// delivery dates.
func (l *Ledger) MarkAllDelivered(ctx context.Context) (int64, error) {
	result := l.conn(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Order{}).
		Update("delivered", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all orders delivered: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOrder removes one order. Unknown ids are ignored.
func (l *Ledger) DeleteOrder(ctx context.Context, orderID uint) error {
	if err := l.conn(ctx).Delete(&models.Order{}, orderID).Error; err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}
	return nil
}
