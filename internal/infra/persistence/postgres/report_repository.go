package postgres

import (
	"context"
	"time"

	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"
	"inventario/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reportRepository implements the read-only aggregations behind the report pages.
// Every SUM is coalesced to zero so empty groups never surface as null.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

type monthlyTotalRow struct {
	Month time.Time
	Total decimal.Decimal
}

// SalesByMonth returns total sale amounts grouped by calendar month.
func (repo *reportRepository) SalesByMonth(ctx context.Context, since time.Time) ([]repository.MonthlyTotal, error) {
	var rows []monthlyTotalRow
	err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("date_trunc('month', occurred_at) AS month, COALESCE(SUM(total), 0) AS total").
		Where("occurred_at >= ?", since).
		Group("month").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales by month")
	}

	totals := make([]repository.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.MonthlyTotal{Month: row.Month, Total: row.Total})
	}

	return totals, nil
}

// SalesBetween returns the sales within [from, to], oldest first.
func (repo *reportRepository) SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var saleMs []model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Seller").
		Where("occurred_at BETWEEN ? AND ?", from, to).
		Order("occurred_at").
		Find(&saleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sales between dates")
	}

	return toSaleDomainSlice(saleMs), nil
}

type userTotalRow struct {
	UserID   string
	UserName string
	Count    int64
	Total    decimal.Decimal
}

// TotalsByUser returns sale count and amount grouped by recording user.
func (repo *reportRepository) TotalsByUser(ctx context.Context) ([]repository.UserSalesTotal, error) {
	var rows []userTotalRow
	err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("users.id AS user_id, users.name AS user_name, COUNT(sales.id) AS count, COALESCE(SUM(sales.total), 0) AS total").
		Joins("JOIN users ON users.id = sales.seller_id").
		Group("users.id, users.name").
		Order("users.name").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales by user")
	}

	totals := make([]repository.UserSalesTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.UserSalesTotal{
			UserID:   row.UserID,
			UserName: row.UserName,
			Count:    row.Count,
			Total:    row.Total,
		})
	}

	return totals, nil
}

type categoryTotalRow struct {
	CategoryID   string
	CategoryName string
	Total        decimal.Decimal
}

// TotalsByCategory returns line subtotal sums grouped by category.
func (repo *reportRepository) TotalsByCategory(ctx context.Context, since time.Time) ([]repository.CategoryTotal, error) {
	var rows []categoryTotalRow
	err := repo.db.WithContext(ctx).
		Model(&model.SaleLineModel{}).
		Select("categories.id AS category_id, categories.name AS category_name, COALESCE(SUM(sale_lines.subtotal), 0) AS total").
		Joins("JOIN products ON products.id = sale_lines.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN sales ON sales.id = sale_lines.sale_id").
		Where("sales.occurred_at >= ?", since).
		Group("categories.id, categories.name").
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales by category")
	}

	totals := make([]repository.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
		})
	}

	return totals, nil
}

type productUnitsRow struct {
	ProductID   string
	ProductName string
	Units       int64
}

// TopProducts returns the products with the most units sold since the given time.
func (repo *reportRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]repository.ProductUnits, error) {
	var rows []productUnitsRow
	err := repo.db.WithContext(ctx).
		Model(&model.SaleLineModel{}).
		Select("products.id AS product_id, products.name AS product_name, COALESCE(SUM(sale_lines.quantity), 0) AS units").
		Joins("JOIN products ON products.id = sale_lines.product_id").
		Joins("JOIN sales ON sales.id = sale_lines.sale_id").
		Where("sales.occurred_at >= ?", since).
		Group("products.id, products.name").
		Order("units DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top products")
	}

	units := make([]repository.ProductUnits, 0, len(rows))
	for _, row := range rows {
		units = append(units, repository.ProductUnits{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Units:       row.Units,
		})
	}

	return units, nil
}
