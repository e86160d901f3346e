package repository

import (
	"context"

	"inventario/internal/domain/entity"
)

// PurchaseRepository defines persistence operations for restock purchases.
type PurchaseRepository interface {
	// Create persists a purchase record. Stock crediting is the caller's
	// responsibility, inside the same transaction.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// List returns all purchases, newest first, with product and user preloaded.
	List(ctx context.Context) ([]*entity.Purchase, error)
}
