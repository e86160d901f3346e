package repository

import (
	"context"
	"time"

	"inventario/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is one month's aggregated sale amount.
// Month is normalized to the first day of the month, UTC.
type MonthlyTotal struct {
	Month time.Time
	Total decimal.Decimal
}

// UserSalesTotal aggregates the sales recorded by one user.
type UserSalesTotal struct {
	UserID   string
	UserName string
	Count    int64
	Total    decimal.Decimal
}

// CategoryTotal aggregates sale line subtotals per category.
type CategoryTotal struct {
	CategoryID   string
	CategoryName string
	Total        decimal.Decimal
}

// ProductUnits counts units sold per product.
type ProductUnits struct {
	ProductID   string
	ProductName string
	Units       int64
}

// ReportRepository exposes the read-only aggregations behind the report pages.
// All sums are coalesced so empty groups report zero, never null.
type ReportRepository interface {
	// SalesByMonth returns total sale amounts grouped by calendar month,
	// oldest first, for sales at or after since.
	SalesByMonth(ctx context.Context, since time.Time) ([]MonthlyTotal, error)

	// SalesBetween returns the sales within [from, to], oldest first,
	// with seller preloaded.
	SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)

	// TotalsByUser returns sale count and amount grouped by recording user.
	TotalsByUser(ctx context.Context) ([]UserSalesTotal, error)

	// TotalsByCategory returns line subtotal sums grouped by category for
	// sales at or after since.
	TotalsByCategory(ctx context.Context, since time.Time) ([]CategoryTotal, error)

	// TopProducts returns the products with the most units sold at or after
	// since, descending, capped at limit.
	TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductUnits, error)
}
