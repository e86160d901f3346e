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
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory adds a category with a unique name. Administrators only.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may create categories")
	}

	newCategory := &entity.Category{Name: input.Name}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, findErr := categoryRepo.FindByName(ctx, input.Name); findErr == nil {
			return domainerrors.ErrCategoryNameTaken.WrapMessage("category creation rejected")
		} else if !errors.Is(findErr, repository.ErrCategoryNotFound) {
			return errors.Wrap(findErr, "failed to check category name uniqueness")
		}

		return categoryRepo.Create(ctx, newCategory)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category creation transaction")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", newCategory.ID), slog.String("name", newCategory.Name))

	return newCategory, nil
}

// ListCategories returns all categories ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// DeleteCategory removes an empty category. A category that still owns
// products is refused; historical sale lines keep their product references.
func (srv *categoryService) DeleteCategory(ctx context.Context, input *usecase.DeleteCategoryInput) error {
	if !input.Actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only administrators may delete categories")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		if _, findErr := categoryRepo.FindByID(ctx, input.CategoryID); findErr != nil {
			if errors.Is(findErr, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category deletion failed")
			}

			return errors.Wrap(findErr, "failed to load category for deletion")
		}

		count, countErr := productRepo.CountByCategory(ctx, input.CategoryID)
		if countErr != nil {
			return errors.Wrap(countErr, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryInUse.WrapMessage("category deletion rejected")
		}

		return categoryRepo.Delete(ctx, input.CategoryID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete category", slog.Any("categoryID", input.CategoryID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute category deletion transaction")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", input.CategoryID))

	return nil
}
