package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item with its authoritative stock count.
// Stock is the only piece of mutable shared state in the system; it is adjusted
// exclusively inside sale and purchase transactions and never goes negative.
type Product struct {
	ID         uuid.UUID
	Name       string
	Price      decimal.Decimal // Unit sale price, fixed-point with 2 decimals.
	Stock      int             // Units currently available. Invariant: >= 0.
	MinStock   int             // Minimum desired stock, used for low-stock alerting.
	CategoryID uuid.UUID
	Category   *Category // Populated on reads that preload the association.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLowStock reports whether the product falls within the alert window:
// stock <= min stock + margin.
func (p *Product) IsLowStock(margin int) bool {
	return p.Stock <= p.MinStock+margin
}
