package impl

import (
	"context"
	"log/slog"

	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager    repository.TransactionManager
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PurchaseRepo repository.PurchaseRepository
	Logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager:    params.TxManager,
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPurchase records a restock and credits the product's stock in the
// same transaction. Administrators only.
func (srv *purchaseService) RegisterPurchase(ctx context.Context, input *usecase.RegisterPurchaseInput) (*entity.Purchase, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may register purchases")
	}

	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive").
			WrapMessage("invalid purchase quantity")
	}
	if input.UnitCost.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit cost must be non-negative").
			WrapMessage("invalid purchase cost")
	}

	unitCost := input.UnitCost.Round(2)
	purchase := &entity.Purchase{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitCost:  unitCost,
		Total:     unitCost.Mul(decimal.NewFromInt(int64(input.Quantity))).Round(2),
		UserID:    input.Actor.UserID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, findErr := productRepo.FindByIDForUpdate(ctx, input.ProductID); findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("purchase rejected")
			}

			return errors.Wrap(findErr, "failed to lock product for purchase")
		}

		if adjustErr := productRepo.AdjustStock(ctx, input.ProductID, input.Quantity); adjustErr != nil {
			return errors.Wrap(adjustErr, "failed to credit stock for purchase")
		}

		return repoFactory.PurchaseRepo().Create(ctx, purchase)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register purchase", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute purchase registration transaction")
	}

	srv.log(ctx).Info("Purchase registered",
		slog.Any("purchaseID", purchase.ID),
		slog.Any("productID", purchase.ProductID),
		slog.Int("quantity", purchase.Quantity))

	return purchase, nil
}

// ListPurchases returns all restocks, newest first. Administrators only.
func (srv *purchaseService) ListPurchases(ctx context.Context, actor entity.Actor) ([]*entity.Purchase, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may list purchases")
	}

	purchases, err := srv.purchaseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}
