package service

import (
	"time"

	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// ReceiptRenderer produces the PDF documents the application exports.
// It receives fully computed entities and aggregates; it performs no
// business computation of its own.
type ReceiptRenderer interface {
	// RenderInvoice renders the invoice for one committed sale, including a
	// scannable reference to the sale.
	RenderInvoice(sale *entity.Sale) ([]byte, error)

	// RenderSalesReport renders the sales listing for a date range together
	// with its precomputed grand total.
	RenderSalesReport(from, to time.Time, sales []*entity.Sale, total decimal.Decimal) ([]byte, error)

	// RenderSellerTotals renders the per-user sales aggregation.
	RenderSellerTotals(generatedAt time.Time, rows []repository.UserSalesTotal) ([]byte, error)
}
