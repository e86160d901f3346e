package usecase

import (
	"context"
	"time"

	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// DateRangeInput bounds a report to [From, To].
type DateRangeInput struct {
	Actor entity.Actor
	From  time.Time
	To    time.Time
}

// SalesBetweenOutput pairs the sales in a range with their grand total.
type SalesBetweenOutput struct {
	Sales []*entity.Sale
	Total decimal.Decimal
}

// ReportUsecase exposes the aggregate views and their PDF exports.
// All reports are restricted to administrators.
type ReportUsecase interface {
	// SalesByMonth returns monthly totals over the configured history window.
	SalesByMonth(ctx context.Context, actor entity.Actor) ([]repository.MonthlyTotal, error)

	// SalesBetween returns the sales within a date range and their total.
	SalesBetween(ctx context.Context, input *DateRangeInput) (*SalesBetweenOutput, error)

	// TotalsByUser returns sale count and amount per recording user.
	TotalsByUser(ctx context.Context, actor entity.Actor) ([]repository.UserSalesTotal, error)

	// TotalsByCategory returns revenue per category over the history window.
	TotalsByCategory(ctx context.Context, actor entity.Actor) ([]repository.CategoryTotal, error)

	// TopProducts returns the best selling products over the history window,
	// capped at the configured limit.
	TopProducts(ctx context.Context, actor entity.Actor) ([]repository.ProductUnits, error)

	// ExportSalesBetween renders the date-range report as a PDF.
	ExportSalesBetween(ctx context.Context, input *DateRangeInput) ([]byte, error)

	// ExportTotalsByUser renders the per-user report as a PDF.
	ExportTotalsByUser(ctx context.Context, actor entity.Actor) ([]byte, error)
}
