package usecase

import (
	"context"

	"inventario/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleLineInput is one requested product entry within a sale.
type SaleLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// RegisterSaleInput defines the data required to commit a sale.
type RegisterSaleInput struct {
	Actor entity.Actor
	Lines []SaleLineInput
}

// SaleUsecase coordinates sale registration and retrieval.
// Registration is all-or-nothing: stock for every line is debited and the
// sale recorded in one transaction, or nothing changes at all.
type SaleUsecase interface {
	// RegisterSale validates the request, debits stock for every line and
	// persists the sale atomically. Unit prices are captured from the catalog
	// at commit time.
	RegisterSale(ctx context.Context, input *RegisterSaleInput) (*entity.Sale, error)

	// GetSale returns one sale with its lines. Sellers may only read their
	// own sales; administrators may read any.
	GetSale(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Sale, error)

	// ListSales returns all sales. Only administrators may call it.
	ListSales(ctx context.Context, actor entity.Actor) ([]*entity.Sale, error)

	// ListOwnSales returns the acting user's sales.
	ListOwnSales(ctx context.Context, actor entity.Actor) ([]*entity.Sale, error)

	// RenderInvoice produces the PDF invoice for a sale, subject to the same
	// visibility rule as GetSale.
	RenderInvoice(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error)
}
