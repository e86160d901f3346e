package impl

import (
	"context"
	"testing"
	"time"

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

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
	renderer   *mockSvc.MockReceiptRenderer
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	renderer := mockSvc.NewMockReceiptRenderer(t)

	service := NewReportService(ReportServiceParams{
		ReportRepo: reportRepo,
		Renderer:   renderer,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
		renderer:   renderer,
	}
}

func TestReportService_SalesByMonth_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []repository.MonthlyTotal{
		{Month: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("150.00")},
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("80.97")},
	}

	fx.reportRepo.EXPECT().SalesByMonth(ctx, mock.AnythingOfType("time.Time")).Return(expected, nil)

	totals, err := fx.service.SalesByMonth(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, totals)
}

func TestReportService_SalesByMonth_RequiresAdmin(t *testing.T) {
	fx := createTestReportService(t)

	totals, err := fx.service.SalesByMonth(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, totals)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReportService_SalesBetween_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	sales := []*entity.Sale{
		{ID: uuid.New(), Total: decimal.RequireFromString("10.50")},
		{ID: uuid.New(), Total: decimal.RequireFromString("20.25")},
	}

	fx.reportRepo.EXPECT().SalesBetween(ctx, from, to).Return(sales, nil)

	output, err := fx.service.SalesBetween(ctx, &usecase.DateRangeInput{Actor: newAdminActor(), From: from, To: to})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, sales, output.Sales)
	assert.True(t, output.Total.Equal(decimal.RequireFromString("30.75")))
}

func TestReportService_SalesBetween_InvertedRange(t *testing.T) {
	fx := createTestReportService(t)

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	output, err := fx.service.SalesBetween(context.Background(), &usecase.DateRangeInput{
		Actor: newAdminActor(),
		From:  from,
		To:    to,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReportService_SalesBetween_EmptyRangeTotalsZero(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	fx.reportRepo.EXPECT().SalesBetween(ctx, from, to).Return(nil, nil)

	output, err := fx.service.SalesBetween(ctx, &usecase.DateRangeInput{Actor: newAdminActor(), From: from, To: to})

	require.NoError(t, err)
	assert.Empty(t, output.Sales)
	assert.True(t, output.Total.IsZero())
}

func TestReportService_TotalsByUser_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []repository.UserSalesTotal{
		{UserID: uuid.New().String(), UserName: "Ana", Count: 3, Total: decimal.RequireFromString("45.00")},
	}

	fx.reportRepo.EXPECT().TotalsByUser(ctx).Return(expected, nil)

	totals, err := fx.service.TotalsByUser(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, totals)
}

func TestReportService_TotalsByCategory_RequiresAdmin(t *testing.T) {
	fx := createTestReportService(t)

	totals, err := fx.service.TotalsByCategory(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, totals)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReportService_TopProducts_UsesConfiguredLimit(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	expected := []repository.ProductUnits{
		{ProductID: uuid.New().String(), ProductName: "Keyboard", Units: 42},
	}

	fx.reportRepo.EXPECT().TopProducts(ctx, mock.AnythingOfType("time.Time"), 5).Return(expected, nil)

	units, err := fx.service.TopProducts(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, units)
}

func TestReportService_ExportSalesBetween_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{{ID: uuid.New(), Total: decimal.RequireFromString("99.00")}}
	document := []byte("%PDF-1.4 report")

	fx.reportRepo.EXPECT().SalesBetween(ctx, from, to).Return(sales, nil)
	fx.renderer.EXPECT().
		RenderSalesReport(from, to, sales, mock.AnythingOfType("decimal.Decimal")).
		Return(document, nil)

	got, err := fx.service.ExportSalesBetween(ctx, &usecase.DateRangeInput{Actor: newAdminActor(), From: from, To: to})

	require.NoError(t, err)
	assert.Equal(t, document, got)
}

func TestReportService_ExportTotalsByUser_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	rows := []repository.UserSalesTotal{
		{UserID: uuid.New().String(), UserName: "Ana", Count: 1, Total: decimal.RequireFromString("10.00")},
	}
	document := []byte("%PDF-1.4 totals")

	fx.reportRepo.EXPECT().TotalsByUser(ctx).Return(rows, nil)
	fx.renderer.EXPECT().
		RenderSellerTotals(mock.AnythingOfType("time.Time"), rows).
		Return(document, nil)

	got, err := fx.service.ExportTotalsByUser(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, document, got)
}

func TestReportService_ExportTotalsByUser_RequiresAdmin(t *testing.T) {
	fx := createTestReportService(t)

	got, err := fx.service.ExportTotalsByUser(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
