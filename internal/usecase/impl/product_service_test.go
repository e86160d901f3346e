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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewProductService(ProductServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		txManager:    txManager,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		Actor:        newAdminActor(),
		Name:         "Keyboard",
		Price:        decimal.RequireFromString("25.499"),
		InitialStock: 10,
		MinStock:     3,
		CategoryID:   categoryID,
	}

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
				Return(&entity.Category{ID: categoryID, Name: "Peripherals"}, nil)

			mockProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					product.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, 10, product.Stock)
	// Prices are stored with two decimals.
	assert.True(t, product.Price.Equal(decimal.RequireFromString("25.50")))
}

func TestProductService_CreateProduct_RequiresAdmin(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.CreateProductInput{
		Actor:      newSellerActor(),
		Name:       "Keyboard",
		Price:      decimal.RequireFromString("25.50"),
		CategoryID: uuid.New(),
	}

	product, err := fx.service.CreateProduct(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProductService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.CreateProductInput{
		Actor:      newAdminActor(),
		Name:       "Keyboard",
		Price:      decimal.RequireFromString("-1.00"),
		CategoryID: uuid.New(),
	}

	product, err := fx.service.CreateProduct(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		Actor:      newAdminActor(),
		Name:       "Keyboard",
		Price:      decimal.RequireFromString("25.50"),
		CategoryID: categoryID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCategoryNotFound.WrapMessage("product creation rejected"))

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	expected := &entity.Product{ID: productID, Name: "Keyboard"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListProducts_PassesSearch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	search := repository.ProductSearch{Name: "key", CategoryID: &categoryID}
	expected := []*entity.Product{{ID: uuid.New(), Name: "Keyboard"}}

	fx.productRepo.EXPECT().List(ctx, search).Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, search)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.UpdateProductInput{
		Actor:      newAdminActor(),
		ProductID:  productID,
		Name:       "Mechanical Keyboard",
		Price:      decimal.RequireFromString("39.90"),
		MinStock:   5,
		CategoryID: categoryID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			// Category unchanged, so no category lookup happens.
			existing := &entity.Product{
				ID:         productID,
				Name:       "Keyboard",
				Price:      decimal.RequireFromString("25.50"),
				Stock:      7,
				MinStock:   3,
				CategoryID: categoryID,
			}
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
			mockProductRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Mechanical Keyboard", product.Name)
	assert.Equal(t, 5, product.MinStock)
	// Stock never moves through catalog updates.
	assert.Equal(t, 7, product.Stock)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	err := fx.service.DeleteProduct(ctx, &usecase.DeleteProductInput{Actor: newAdminActor(), ProductID: productID})

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_RequiresAdmin(t *testing.T) {
	fx := createTestProductService(t)

	err := fx.service.DeleteProduct(context.Background(), &usecase.DeleteProductInput{
		Actor:     newSellerActor(),
		ProductID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProductService_LowStockAlerts_UsesConfiguredMargin(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expected := []*entity.Product{{ID: uuid.New(), Name: "Mouse", Stock: 2, MinStock: 1}}

	fx.productRepo.EXPECT().LowStock(ctx, 2).Return(expected, nil)

	products, err := fx.service.LowStockAlerts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
