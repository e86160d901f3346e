package repository

import (
	"context"

	"inventario/internal/domain/entity"
	"inventario/internal/errors"

	"github.com/google/uuid"
)

// ErrSaleNotFound is returned when no sale matches the lookup.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines persistence operations for sales and their lines.
// Sales are write-once: there is deliberately no update or delete.
type SaleRepository interface {
	// Create persists the sale header and all of its lines. The implementation
	// fills in the generated identifiers and timestamp on the passed entity.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale with lines, products and seller preloaded,
	// or ErrSaleNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List returns all sales, newest first, with seller preloaded.
	List(ctx context.Context) ([]*entity.Sale, error)

	// ListBySeller returns the sales recorded by one user, newest first.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error)
}
