package postgres

import (
	"context"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the stock ledger port using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references a missing category")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock values must be non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its category preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate retrieves a product under a row-level write lock
// (SELECT ... FOR UPDATE). Only meaningful on a repository bound to an open
// transaction; the lock is held until that transaction ends.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product row")
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the search, ordered by name.
func (repo *productRepository) List(ctx context.Context, search repository.ProductSearch) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Order("name")

	if search.Name != "" {
		query = query.Where("name ILIKE ?", "%"+search.Name+"%")
	}
	if search.CategoryID != nil {
		query = query.Where("category_id = ?", *search.CategoryID)
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Update modifies the catalog fields of an existing product.
// Stock is deliberately excluded: it only moves through AdjustStock.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"min_stock":   product.MinStock,
			"category_id": product.CategoryID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references a missing category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product from the catalog.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies stock += delta with a guard that refuses to drive the
// count negative. The predicate makes the update a no-op instead of clamping,
// so a zero row count with the product present means insufficient stock.
func (repo *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust stock")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to verify product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// LowStock returns every product inside the alert window, category preloaded.
func (repo *productRepository) LowStock(ctx context.Context, margin int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("stock <= min_stock + ?", margin).
		Order("name").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query low stock products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// CountByCategory reports how many products reference the category.
func (repo *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:         m.ID,
		Name:       m.Name,
		Price:      m.Price,
		Stock:      m.Stock,
		MinStock:   m.MinStock,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		product.Category = toCategoryDomain(m.Category)
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Stock:      product.Stock,
		MinStock:   product.MinStock,
		CategoryID: product.CategoryID,
	}
}
