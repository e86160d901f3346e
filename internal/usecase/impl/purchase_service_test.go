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

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service      usecase.PurchaseUsecase
	txManager    *mockRepo.MockTransactionManager
	purchaseRepo *mockRepo.MockPurchaseRepository
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)

	service := NewPurchaseService(PurchaseServiceParams{
		TxManager:    txManager,
		PurchaseRepo: purchaseRepo,
		Logger:       newDiscardLogger(),
	})

	return purchaseServiceFixtures{
		service:      service,
		txManager:    txManager,
		purchaseRepo: purchaseRepo,
	}
}

func TestPurchaseService_RegisterPurchase_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	actor := newAdminActor()
	productID := uuid.New()
	input := &usecase.RegisterPurchaseInput{
		Actor:     actor,
		ProductID: productID,
		Quantity:  12,
		UnitCost:  decimal.RequireFromString("4.555"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			product := &entity.Product{ID: productID, Name: "Cable", Stock: 3}
			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(product, nil)
			mockProductRepo.EXPECT().AdjustStock(ctx, productID, 12).Return(nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					purchase.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	purchase, err := fx.service.RegisterPurchase(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, actor.UserID, purchase.UserID)
	assert.Equal(t, 12, purchase.Quantity)
	assert.True(t, purchase.UnitCost.Equal(decimal.RequireFromString("4.56")))
	assert.True(t, purchase.Total.Equal(decimal.RequireFromString("54.72")))
}

func TestPurchaseService_RegisterPurchase_RequiresAdmin(t *testing.T) {
	fx := createTestPurchaseService(t)

	input := &usecase.RegisterPurchaseInput{
		Actor:     newSellerActor(),
		ProductID: uuid.New(),
		Quantity:  1,
		UnitCost:  decimal.RequireFromString("1.00"),
	}

	purchase, err := fx.service.RegisterPurchase(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPurchaseService_RegisterPurchase_NonPositiveQuantity(t *testing.T) {
	fx := createTestPurchaseService(t)

	input := &usecase.RegisterPurchaseInput{
		Actor:     newAdminActor(),
		ProductID: uuid.New(),
		Quantity:  0,
		UnitCost:  decimal.RequireFromString("1.00"),
	}

	purchase, err := fx.service.RegisterPurchase(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPurchaseService_RegisterPurchase_NegativeUnitCost(t *testing.T) {
	fx := createTestPurchaseService(t)

	input := &usecase.RegisterPurchaseInput{
		Actor:     newAdminActor(),
		ProductID: uuid.New(),
		Quantity:  3,
		UnitCost:  decimal.RequireFromString("-0.01"),
	}

	purchase, err := fx.service.RegisterPurchase(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPurchaseService_RegisterPurchase_UnknownProduct(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.RegisterPurchaseInput{
		Actor:     newAdminActor(),
		ProductID: productID,
		Quantity:  5,
		UnitCost:  decimal.RequireFromString("2.00"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrProductNotFound.WrapMessage("purchase rejected"))

	purchase, err := fx.service.RegisterPurchase(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestPurchaseService_ListPurchases_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	expected := []*entity.Purchase{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.purchaseRepo.EXPECT().List(ctx).Return(expected, nil)

	purchases, err := fx.service.ListPurchases(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, purchases)
}

func TestPurchaseService_ListPurchases_RequiresAdmin(t *testing.T) {
	fx := createTestPurchaseService(t)

	purchases, err := fx.service.ListPurchases(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, purchases)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
