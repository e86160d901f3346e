package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// saleService implements the SaleUsecase interface. RegisterSale is the only
// write path that debits stock; everything it does happens inside a single
// database transaction.
type saleService struct {
	txManager repository.TransactionManager
	saleRepo  repository.SaleRepository
	renderer  service.ReceiptRenderer
	logger    *slog.Logger
}

// SaleServiceParams holds dependencies for SaleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SaleRepo  repository.SaleRepository
	Renderer  service.ReceiptRenderer
	Logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager: params.TxManager,
		saleRepo:  params.SaleRepo,
		renderer:  params.Renderer,
		logger:    params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSale commits a sale: every line locks its product row, verifies
// stock, debits it and captures the current unit price, then the header and
// lines are persisted. Any failure rolls the whole transaction back, so a
// rejected sale leaves no stock movement behind.
func (srv *saleService) RegisterSale(ctx context.Context, input *usecase.RegisterSaleInput) (*entity.Sale, error) {
	if !input.Actor.CanSell() {
		return nil, domainerrors.ErrForbidden.WrapMessage("acting user may not register sales")
	}

	if err := validateSaleLines(input.Lines); err != nil {
		return nil, err
	}

	// Lock product rows in a fixed order so two sales touching the same
	// products never deadlock.
	lines := make([]usecase.SaleLineInput, len(input.Lines))
	copy(lines, input.Lines)
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID.String() < lines[j].ProductID.String()
	})

	sale := &entity.Sale{SellerID: input.Actor.UserID}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		total := decimal.Zero

		for _, line := range lines {
			product, findErr := productRepo.FindByIDForUpdate(ctx, line.ProductID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.
						WithDetails(fmt.Sprintf("product %s does not exist", line.ProductID)).
						WrapMessage("sale rejected")
				}

				return errors.Wrap(findErr, "failed to lock product for sale")
			}

			if product.Stock < line.Quantity {
				return domainerrors.ErrInsufficientStock.
					WithDetails(fmt.Sprintf("product %q has %d units, %d requested", product.Name, product.Stock, line.Quantity)).
					WrapMessage("sale rejected")
			}

			if adjustErr := productRepo.AdjustStock(ctx, product.ID, -line.Quantity); adjustErr != nil {
				return errors.Wrap(adjustErr, "failed to debit stock for sale")
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
			total = total.Add(subtotal)

			sale.Lines = append(sale.Lines, &entity.SaleLine{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		sale.Total = total

		return repoFactory.SaleRepo().Create(ctx, sale)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register sale", slog.Any("sellerID", input.Actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sale registration transaction")
	}

	srv.log(ctx).Info("Sale registered",
		slog.Any("saleID", sale.ID),
		slog.Any("sellerID", sale.SellerID),
		slog.String("total", sale.Total.StringFixed(2)),
		slog.Int("lines", len(sale.Lines)))

	return sale, nil
}

// GetSale returns one sale. Sellers may only read their own.
func (srv *saleService) GetSale(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound.WrapMessage("sale lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load sale")
	}

	if !actor.IsAdmin() && sale.SellerID != actor.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("sale belongs to another seller")
	}

	return sale, nil
}

// ListSales returns all sales. Administrators only.
func (srv *saleService) ListSales(ctx context.Context, actor entity.Actor) ([]*entity.Sale, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may list all sales")
	}

	sales, err := srv.saleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// ListOwnSales returns the acting user's sales, newest first.
func (srv *saleService) ListOwnSales(ctx context.Context, actor entity.Actor) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.ListBySeller(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own sales")
	}

	return sales, nil
}

// RenderInvoice produces the PDF invoice for one sale.
func (srv *saleService) RenderInvoice(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error) {
	sale, err := srv.GetSale(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	document, err := srv.renderer.RenderInvoice(sale)
	if err != nil {
		srv.log(ctx).Error("Failed to render invoice", slog.Any("saleID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render invoice")
	}

	return document, nil
}

func validateSaleLines(lines []usecase.SaleLineInput) error {
	if len(lines) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("a sale requires at least one line").
			WrapMessage("empty sale rejected")
	}

	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.
				WithDetails(fmt.Sprintf("quantity for product %s must be positive", line.ProductID)).
				WrapMessage("invalid sale line")
		}

		if _, dup := seen[line.ProductID]; dup {
			return domainerrors.ErrValidationFailed.
				WithDetails(fmt.Sprintf("product %s appears more than once", line.ProductID)).
				WrapMessage("duplicate sale line")
		}
		seen[line.ProductID] = struct{}{}
	}

	return nil
}
