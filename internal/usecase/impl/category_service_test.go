package impl

import (
	"context"
	"testing"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	mockRepo "inventario/internal/mocks/repository"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Actor: newAdminActor(), Name: "Peripherals"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().FindByName(ctx, input.Name).Return(nil, repository.ErrCategoryNotFound)
			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					category.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, input.Name, category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_CreateCategory_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Actor: newAdminActor(), Name: "Peripherals"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			existing := &entity.Category{ID: uuid.New(), Name: input.Name}
			mockCategoryRepo.EXPECT().FindByName(ctx, input.Name).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCategoryNameTaken.WrapMessage("category creation rejected"))

	category, err := fx.service.CreateCategory(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNameTaken))
}

func TestCategoryService_CreateCategory_RequiresAdmin(t *testing.T) {
	fx := createTestCategoryService(t)

	category, err := fx.service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{
		Actor: newSellerActor(),
		Name:  "Peripherals",
	})

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCategoryService_ListCategories_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	expected := []*entity.Category{{ID: uuid.New(), Name: "Cables"}, {ID: uuid.New(), Name: "Peripherals"}}

	fx.categoryRepo.EXPECT().List(ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.DeleteCategoryInput{Actor: newAdminActor(), CategoryID: categoryID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, categoryID).
				Return(&entity.Category{ID: categoryID, Name: "Empty"}, nil)
			mockProductRepo.EXPECT().CountByCategory(ctx, categoryID).Return(int64(0), nil)
			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCategory(ctx, input)

	require.NoError(t, err)
}

func TestCategoryService_DeleteCategory_StillOwnsProducts(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.DeleteCategoryInput{Actor: newAdminActor(), CategoryID: categoryID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, categoryID).
				Return(&entity.Category{ID: categoryID, Name: "Busy"}, nil)
			mockProductRepo.EXPECT().CountByCategory(ctx, categoryID).Return(int64(4), nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCategoryInUse.WrapMessage("category deletion rejected"))

	err := fx.service.DeleteCategory(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse))
}

func TestCategoryService_DeleteCategory_RequiresAdmin(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.DeleteCategory(context.Background(), &usecase.DeleteCategoryInput{
		Actor:      newSellerActor(),
		CategoryID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
