package pdf

import (
	"bytes"
	"testing"
	"time"

	"inventario/config"
	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *fpdfRenderer {
	return &fpdfRenderer{company: config.CompanyConfig{
		Name:    "Test Store",
		Address: "Main Street 1",
		Phone:   "0999999999",
	}}
}

func newTestSale() *entity.Sale {
	product := &entity.Product{ID: uuid.New(), Name: "Keyboard"}

	return &entity.Sale{
		ID:         uuid.New(),
		OccurredAt: time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		Total:      decimal.RequireFromString("51.00"),
		Seller:     &entity.User{ID: uuid.New(), Name: "Ana"},
		Lines: []*entity.SaleLine{
			{
				ProductID: product.ID,
				Product:   product,
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("25.50"),
				Subtotal:  decimal.RequireFromString("51.00"),
			},
		},
	}
}

func TestReceiptRenderer_RenderInvoice(t *testing.T) {
	renderer := newTestRenderer()

	document, err := renderer.RenderInvoice(newTestSale())

	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestReceiptRenderer_RenderSalesReport(t *testing.T) {
	renderer := newTestRenderer()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{newTestSale()}

	document, err := renderer.RenderSalesReport(from, to, sales, decimal.RequireFromString("51.00"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestReceiptRenderer_RenderSalesReport_EmptyRange(t *testing.T) {
	renderer := newTestRenderer()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	document, err := renderer.RenderSalesReport(from, to, nil, decimal.Zero)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestReceiptRenderer_RenderSellerTotals(t *testing.T) {
	renderer := newTestRenderer()

	rows := []repository.UserSalesTotal{
		{UserID: uuid.New().String(), UserName: "Ana", Count: 3, Total: decimal.RequireFromString("45.00")},
		{UserID: uuid.New().String(), UserName: "Luis", Count: 1, Total: decimal.RequireFromString("9.99")},
	}

	document, err := renderer.RenderSellerTotals(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), rows)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}
