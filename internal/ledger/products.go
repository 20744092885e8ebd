package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

// ProductDemand is a catalog product with the quantity still to be delivered
// on one delivery date.
type ProductDemand struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	TotalQuantity int64   `json:"total_quantity"`
}

// ListProductsWithDemand returns every product. Products without pending
// orders on date report a zero total.
func (l *Ledger) ListProductsWithDemand(ctx context.Context, date models.DeliveryDate) ([]ProductDemand, error) {
	products := []ProductDemand{}

	err := l.conn(ctx).Table("products AS p").
		Select("p.id, p.name, p.price, COALESCE(SUM(o.quantity), 0) AS total_quantity").
		Joins("LEFT JOIN orders AS o ON p.id = o.product_id AND o.delivered = FALSE AND o.delivery_date = ?", date).
		Group("p.id, p.name, p.price").
		Order(l.byName("p.name")).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for %s: %w", date, err)
	}

	return products, nil
}

// EnsureDefaultProducts adds every canonical product name that is missing.
// Existing rows, including their prices, are left untouched. It reports how
// many rows were added.
func (l *Ledger) EnsureDefaultProducts(ctx context.Context) (int64, error) {
	products := make([]models.Product, 0, len(defaultCatalog))
	for _, name := range DefaultProductNames() {
		products = append(products, models.Product{Name: name})
	}

	return l.insertMissing(ctx, products)
}

// SeedCatalog loads the priced catalog into an empty products table. A
// populated table is left alone.
func (l *Ledger) SeedCatalog(ctx context.Context) (int64, error) {
	var count int64
	if err := l.conn(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := make([]models.Product, 0, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		products = append(products, models.Product{Name: entry.Name, Price: entry.Price})
	}

	return l.insertMissing(ctx, products)
}

func (l *Ledger) insertMissing(ctx context.Context, products []models.Product) (int64, error) {
	result := l.conn(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&products)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert products: %w", result.Error)
	}
	return result.RowsAffected, nil
}
