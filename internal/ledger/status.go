package ledger

import (
	"context"
	"fmt"

	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

type CustomerStatusRow struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	PendingQuantity int64  `json:"pending_quantity"`
}

// StatusReport splits the customers of a delivery date by whether anything
// is still waiting to be delivered to them.
type StatusReport struct {
	Pending   []CustomerStatusRow `json:"pending"`
	Delivered []CustomerStatusRow `json:"delivered"`
}

// CustomerStatus is recomputed from the orders on every call. Only orders on
// the same delivery date count towards a customer's pending quantity.
func (l *Ledger) CustomerStatus(ctx context.Context, date models.DeliveryDate) (*StatusReport, error) {
	var rows []CustomerStatusRow

	err := l.conn(ctx).Table("customers AS c").
		Select("c.id, c.name, c.phone, " +
			"COALESCE(SUM(CASE WHEN o.delivered = FALSE THEN o.quantity ELSE 0 END), 0) AS pending_quantity").
		Joins("LEFT JOIN orders AS o ON c.id = o.customer_id AND o.delivery_date = ?", date).
		Where("c.delivery_date = ?", date).
		Group("c.id, c.name, c.phone").
		Order(l.byName("c.name")).
		Order("c.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute customer status for %s: %w", date, err)
	}

	report := &StatusReport{
		Pending:   []CustomerStatusRow{},
		Delivered: []CustomerStatusRow{},
	}
	for _, row := range rows {
		if row.PendingQuantity > 0 {
			report.Pending = append(report.Pending, row)
		} else {
			report.Delivered = append(report.Delivered, row)
		}
	}

	return report, nil
}
