package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the header of a committed sale. A sale and its lines are created
// together in one atomic unit and never updated afterward.
type Sale struct {
	ID         uuid.UUID
	OccurredAt time.Time       // Set at creation.
	Total      decimal.Decimal // Exact sum of the line subtotals.
	SellerID   uuid.UUID       // The user who recorded the sale.
	Seller     *User           // Populated on reads that preload the association.
	Lines      []*SaleLine
}

// SaleLine is one product entry within a sale. Immutable once committed.
type SaleLine struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	ProductID uuid.UUID
	Product   *Product        // Populated on reads that preload the association.
	Quantity  int             // Positive.
	UnitPrice decimal.Decimal // Product price at the moment of sale.
	Subtotal  decimal.Decimal // UnitPrice * Quantity, rounded to 2 decimals.
}
