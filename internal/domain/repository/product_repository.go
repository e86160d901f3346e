package repository

import (
	"context"

	"inventario/internal/domain/entity"
	"inventario/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors surfaced by product persistence. The stock ledger never
// clamps: an adjustment that would drive stock negative fails with
// ErrInsufficientStock and leaves the row untouched.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductSearch narrows List results. Zero values mean "no filter".
type ProductSearch struct {
	Name       string     // Case-insensitive substring match on the product name.
	CategoryID *uuid.UUID // Exact category match.
}

// ProductRepository is the stock ledger port: catalog CRUD plus signed,
// transaction-scoped stock adjustments.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its category preloaded, or ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product and acquires a row-level write lock
	// on it for the remainder of the enclosing transaction. Two concurrent
	// sales of the same product serialize on this lock, so the stock check
	// that follows never acts on a stale read.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products matching the search, ordered by name.
	List(ctx context.Context, search ProductSearch) ([]*entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies stock += delta within the caller's transaction.
	// Returns ErrInsufficientStock when delta is negative and its magnitude
	// exceeds the current stock, ErrProductNotFound when the row is missing.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error

	// LowStock returns every product with stock <= min stock + margin,
	// category preloaded, ordered by name.
	LowStock(ctx context.Context, margin int) ([]*entity.Product, error)

	// CountByCategory reports how many products reference the category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
