// Package ledger holds the bakery order ledger: customers grouped by delivery
// date, the product catalog, their orders, and the views derived from them.
package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Ledger runs every operation against the pool it was built with. Each call
// scopes its statements to the caller's context.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) conn(ctx context.Context) *gorm.DB {
	return l.db.WithContext(ctx)
}

// byName orders a text column by its raw code points on every dialect.
func (l *Ledger) byName(column string) string {
	switch l.db.Dialector.Name() {
	case "postgres":
		return column + ` COLLATE "C"`
	case "mysql":
		return "BINARY " + column
	default:
		return column
	}
}

// likeOp returns a case-sensitive LIKE operator. SQLite connections are opened
// with case_sensitive_like, so plain LIKE serves there.
func (l *Ledger) likeOp() string {
	if l.db.Dialector.Name() == "mysql" {
		return "LIKE BINARY"
	}
	return "LIKE"
}

func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to look up %T %d: %w", model, id, err)
	}
	return n > 0, nil
}
