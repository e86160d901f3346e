package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records a restock event. Committing a purchase credits the
// referenced product's stock by Quantity in the same transaction.
type Purchase struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Product    *Product        // Populated on reads that preload the association.
	Quantity   int             // Positive.
	UnitCost   decimal.Decimal // Non-negative, fixed-point with 2 decimals.
	Total      decimal.Decimal // Quantity * UnitCost.
	OccurredAt time.Time
	UserID     uuid.UUID // The admin who recorded the purchase.
	User       *User
}
