package repository

import (
	"context"

	"inventario/internal/domain/entity"
	"inventario/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by ID, or ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by its unique name, or ErrCategoryNotFound.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category. Callers must first verify the category
	// owns no products; the database restricts the delete otherwise.
	Delete(ctx context.Context, id uuid.UUID) error
}
