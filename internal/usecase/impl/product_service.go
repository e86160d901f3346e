package impl

import (
	"context"
	"log/slog"

	"inventario/config"
	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	alertMargin  int
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	alertMargin := 0
	if params.Config != nil && params.Config.Stock != nil {
		alertMargin = params.Config.Stock.AlertMargin
	}

	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		alertMargin:  alertMargin,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog item. Administrators only. The initial stock
// is the only stock write that does not go through a sale or purchase.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may create products")
	}

	if err := validateProductFields(input.Price.IsNegative(), input.InitialStock < 0, input.MinStock < 0); err != nil {
		return nil, err
	}

	newProduct := &entity.Product{
		Name:       input.Name,
		Price:      input.Price.Round(2),
		Stock:      input.InitialStock,
		MinStock:   input.MinStock,
		CategoryID: input.CategoryID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); findErr != nil {
			if errors.Is(findErr, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("product creation rejected")
			}

			return errors.Wrap(findErr, "failed to load category for product creation")
		}

		return repoFactory.ProductRepo().Create(ctx, newProduct)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", newProduct.ID), slog.String("name", newProduct.Name))

	return newProduct, nil
}

// GetProduct returns one product with its category.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns the catalog filtered by the search.
func (srv *productService) ListProducts(ctx context.Context, search repository.ProductSearch) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies catalog changes. Administrators only. Stock never
// moves through this path.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may update products")
	}

	if err := validateProductFields(input.Price.IsNegative(), false, input.MinStock < 0); err != nil {
		return nil, err
	}

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, input.ProductID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
			}

			return errors.Wrap(findErr, "failed to load product for update")
		}

		if input.CategoryID != product.CategoryID {
			if _, catErr := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); catErr != nil {
				if errors.Is(catErr, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound.WrapMessage("product update rejected")
				}

				return errors.Wrap(catErr, "failed to load category for product update")
			}
		}

		product.Name = input.Name
		product.Price = input.Price.Round(2)
		product.MinStock = input.MinStock
		product.CategoryID = input.CategoryID
		product.Category = nil

		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return updated, nil
}

// DeleteProduct removes a catalog item. Administrators only.
func (srv *productService) DeleteProduct(ctx context.Context, input *usecase.DeleteProductInput) error {
	if !input.Actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only administrators may delete products")
	}

	if err := srv.productRepo.Delete(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product deletion failed")
		}

		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", input.ProductID))

	return nil
}

// LowStockAlerts returns products at or below minimum stock plus the
// configured margin.
func (srv *productService) LowStockAlerts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.LowStock(ctx, srv.alertMargin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return products, nil
}

func validateProductFields(negativePrice, negativeStock, negativeMinStock bool) error {
	switch {
	case negativePrice:
		return domainerrors.ErrValidationFailed.WithDetails("price must be non-negative").
			WrapMessage("invalid price")
	case negativeStock:
		return domainerrors.ErrValidationFailed.WithDetails("initial stock must be non-negative").
			WrapMessage("invalid stock")
	case negativeMinStock:
		return domainerrors.ErrValidationFailed.WithDetails("minimum stock must be non-negative").
			WrapMessage("invalid minimum stock")
	}

	return nil
}
