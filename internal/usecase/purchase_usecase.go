package usecase

import (
	"context"

	"inventario/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterPurchaseInput defines the data required to record a restock.
type RegisterPurchaseInput struct {
	Actor     entity.Actor
	ProductID uuid.UUID
	Quantity  int
	UnitCost  decimal.Decimal
}

// PurchaseUsecase coordinates restock registration. Restricted to
// administrators; committing a purchase credits the product's stock in the
// same transaction that records it.
type PurchaseUsecase interface {
	RegisterPurchase(ctx context.Context, input *RegisterPurchaseInput) (*entity.Purchase, error)
	ListPurchases(ctx context.Context, actor entity.Actor) ([]*entity.Purchase, error)
}
