package usecase

import (
	"context"

	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Actor        entity.Actor
	Name         string
	Price        decimal.Decimal
	InitialStock int
	MinStock     int
	CategoryID   uuid.UUID
}

// UpdateProductInput carries catalog changes for one product. Stock is
// deliberately absent: it only moves through sales and purchases.
type UpdateProductInput struct {
	Actor      entity.Actor
	ProductID  uuid.UUID
	Name       string
	Price      decimal.Decimal
	MinStock   int
	CategoryID uuid.UUID
}

// DeleteProductInput identifies the product to remove.
type DeleteProductInput struct {
	Actor     entity.Actor
	ProductID uuid.UUID
}

// ProductUsecase defines catalog and stock inspection operations.
// Mutations are restricted to administrators; reads are open to any
// authenticated user.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, search repository.ProductSearch) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, input *DeleteProductInput) error

	// LowStockAlerts returns products at or below their minimum stock plus
	// the configured alert margin.
	LowStockAlerts(ctx context.Context) ([]*entity.Product, error)
}
