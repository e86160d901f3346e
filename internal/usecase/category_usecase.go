package usecase

import (
	"context"

	"inventario/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Actor entity.Actor
	Name  string
}

// DeleteCategoryInput identifies the category to remove.
type DeleteCategoryInput struct {
	Actor      entity.Actor
	CategoryID uuid.UUID
}

// CategoryUsecase defines category management operations.
// Creation and deletion are restricted to administrators.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// DeleteCategory removes an empty category. A category that still owns
	// products is never deleted.
	DeleteCategory(ctx context.Context, input *DeleteCategoryInput) error
}
