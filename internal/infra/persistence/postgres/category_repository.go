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
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{ID: category.ID, Name: category.Name}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryNameTaken.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByName retrieves a category by its unique name.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns all categories ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("name").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// Delete removes a category. The foreign key from products restricts the
// delete while the category still owns products.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category still referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name}
}
