package impl

import (
	"context"
	"testing"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	mockRepo "inventario/internal/mocks/repository"
	mockSvc "inventario/internal/mocks/service"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// saleServiceFixtures holds all test dependencies for sale service tests.
type saleServiceFixtures struct {
	service   usecase.SaleUsecase
	txManager *mockRepo.MockTransactionManager
	saleRepo  *mockRepo.MockSaleRepository
	renderer  *mockSvc.MockReceiptRenderer
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	renderer := mockSvc.NewMockReceiptRenderer(t)

	service := NewSaleService(SaleServiceParams{
		TxManager: txManager,
		SaleRepo:  saleRepo,
		Renderer:  renderer,
		Logger:    newDiscardLogger(),
	})

	return saleServiceFixtures{
		service:   service,
		txManager: txManager,
		saleRepo:  saleRepo,
		renderer:  renderer,
	}
}

func TestSaleService_RegisterSale_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	actor := newSellerActor()

	// Two products with known identifier order; the input lines arrive in
	// reverse so the test also observes the deterministic locking order.
	firstID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	secondID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	first := &entity.Product{ID: firstID, Name: "Keyboard", Price: decimal.RequireFromString("25.50"), Stock: 10}
	second := &entity.Product{ID: secondID, Name: "Mouse", Price: decimal.RequireFromString("9.99"), Stock: 4}

	input := &usecase.RegisterSaleInput{
		Actor: actor,
		Lines: []usecase.SaleLineInput{
			{ProductID: secondID, Quantity: 3},
			{ProductID: firstID, Quantity: 2},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)

			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, firstID).Return(first, nil)
			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, secondID).Return(second, nil)
			mockProductRepo.EXPECT().AdjustStock(ctx, firstID, -2).Return(nil)
			mockProductRepo.EXPECT().AdjustStock(ctx, secondID, -3).Return(nil)

			mockSaleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Sale")).
				Run(func(ctx context.Context, sale *entity.Sale) {
					sale.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	sale, err := fx.service.RegisterSale(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, actor.UserID, sale.SellerID)
	require.Len(t, sale.Lines, 2)

	// Lines follow the lock order, lowest product ID first.
	assert.Equal(t, firstID, sale.Lines[0].ProductID)
	assert.Equal(t, secondID, sale.Lines[1].ProductID)

	assert.True(t, sale.Lines[0].Subtotal.Equal(decimal.RequireFromString("51.00")))
	assert.True(t, sale.Lines[1].Subtotal.Equal(decimal.RequireFromString("29.97")))
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("80.97")))

	// Each line captures the unit price at the moment of sale.
	assert.True(t, sale.Lines[0].UnitPrice.Equal(first.Price))
	assert.True(t, sale.Lines[1].UnitPrice.Equal(second.Price))
}

func TestSaleService_RegisterSale_InsufficientStock(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Monitor", Price: decimal.RequireFromString("120.00"), Stock: 1}

	input := &usecase.RegisterSaleInput{
		Actor: newSellerActor(),
		Lines: []usecase.SaleLineInput{{ProductID: productID, Quantity: 5}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			// The stock check trips before any adjustment or insert happens.
			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(product, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInsufficientStock.
			WithDetails(`product "Monitor" has 1 units, 5 requested`).
			WrapMessage("sale rejected"))

	sale, err := fx.service.RegisterSale(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, sale)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Monitor")
}

func TestSaleService_RegisterSale_SecondLineFailureAbortsSale(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	firstID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	missingID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	first := &entity.Product{ID: firstID, Name: "Cable", Price: decimal.RequireFromString("3.00"), Stock: 50}

	input := &usecase.RegisterSaleInput{
		Actor: newSellerActor(),
		Lines: []usecase.SaleLineInput{
			{ProductID: firstID, Quantity: 1},
			{ProductID: missingID, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			// The first line debits, then the second line fails. The sale
			// header is never inserted; the transaction rollback reverts
			// the debit.
			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, firstID).Return(first, nil)
			mockProductRepo.EXPECT().AdjustStock(ctx, firstID, -1).Return(nil)
			mockProductRepo.EXPECT().FindByIDForUpdate(ctx, missingID).Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrProductNotFound.
			WithDetails("product " + missingID.String() + " does not exist").
			WrapMessage("sale rejected"))

	sale, err := fx.service.RegisterSale(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, sale)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestSaleService_RegisterSale_EmptyLines(t *testing.T) {
	fx := createTestSaleService(t)

	input := &usecase.RegisterSaleInput{Actor: newSellerActor()}

	sale, err := fx.service.RegisterSale(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSaleService_RegisterSale_DuplicateProduct(t *testing.T) {
	fx := createTestSaleService(t)

	productID := uuid.New()
	input := &usecase.RegisterSaleInput{
		Actor: newSellerActor(),
		Lines: []usecase.SaleLineInput{
			{ProductID: productID, Quantity: 1},
			{ProductID: productID, Quantity: 2},
		},
	}

	sale, err := fx.service.RegisterSale(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "more than once")
}

func TestSaleService_RegisterSale_NonPositiveQuantity(t *testing.T) {
	fx := createTestSaleService(t)

	input := &usecase.RegisterSaleInput{
		Actor: newSellerActor(),
		Lines: []usecase.SaleLineInput{{ProductID: uuid.New(), Quantity: 0}},
	}

	sale, err := fx.service.RegisterSale(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSaleService_RegisterSale_InactiveActor(t *testing.T) {
	fx := createTestSaleService(t)

	input := &usecase.RegisterSaleInput{
		Actor: entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller, Active: false},
		Lines: []usecase.SaleLineInput{{ProductID: uuid.New(), Quantity: 1}},
	}

	sale, err := fx.service.RegisterSale(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, sale)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSaleService_GetSale_SellerReadsOwn(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	actor := newSellerActor()
	saleID := uuid.New()
	sale := &entity.Sale{ID: saleID, SellerID: actor.UserID, Total: decimal.RequireFromString("10.00")}

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)

	got, err := fx.service.GetSale(ctx, actor, saleID)

	require.NoError(t, err)
	assert.Equal(t, sale, got)
}

func TestSaleService_GetSale_OtherSellerForbidden(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	actor := newSellerActor()
	saleID := uuid.New()
	sale := &entity.Sale{ID: saleID, SellerID: uuid.New()}

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)

	got, err := fx.service.GetSale(ctx, actor, saleID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSaleService_GetSale_AdminReadsAny(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	sale := &entity.Sale{ID: saleID, SellerID: uuid.New()}

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)

	got, err := fx.service.GetSale(ctx, newAdminActor(), saleID)

	require.NoError(t, err)
	assert.Equal(t, sale, got)
}

func TestSaleService_GetSale_NotFound(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(nil, repository.ErrSaleNotFound)

	got, err := fx.service.GetSale(ctx, newAdminActor(), saleID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestSaleService_ListSales_RequiresAdmin(t *testing.T) {
	fx := createTestSaleService(t)

	sales, err := fx.service.ListSales(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, sales)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSaleService_ListSales_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	expected := []*entity.Sale{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.saleRepo.EXPECT().List(ctx).Return(expected, nil)

	sales, err := fx.service.ListSales(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, sales)
}

func TestSaleService_ListOwnSales_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	actor := newSellerActor()
	expected := []*entity.Sale{{ID: uuid.New(), SellerID: actor.UserID}}

	fx.saleRepo.EXPECT().ListBySeller(ctx, actor.UserID).Return(expected, nil)

	sales, err := fx.service.ListOwnSales(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, expected, sales)
}

func TestSaleService_RenderInvoice_Success(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	actor := newSellerActor()
	saleID := uuid.New()
	sale := &entity.Sale{ID: saleID, SellerID: actor.UserID}
	document := []byte("%PDF-1.4 test")

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)
	fx.renderer.EXPECT().RenderInvoice(sale).Return(document, nil)

	got, err := fx.service.RenderInvoice(ctx, actor, saleID)

	require.NoError(t, err)
	assert.Equal(t, document, got)
}

func TestSaleService_RenderInvoice_ForbiddenForOtherSeller(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	saleID := uuid.New()
	sale := &entity.Sale{ID: saleID, SellerID: uuid.New()}

	fx.saleRepo.EXPECT().FindByID(ctx, saleID).Return(sale, nil)

	got, err := fx.service.RenderInvoice(ctx, newSellerActor(), saleID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
