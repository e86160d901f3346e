package pdf

import (
	"bytes"
	"fmt"
	"time"

	"inventario/config"
	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	qrSizeMM    = 28.0
	qrSizePixel = 256
)

type fpdfRenderer struct {
	company config.CompanyConfig
}

// NewReceiptRenderer builds the PDF renderer used for invoices and reports.
func NewReceiptRenderer(cfg *config.Config) service.ReceiptRenderer {
	company := config.CompanyConfig{}
	if cfg.Company != nil {
		company = *cfg.Company
	}

	return &fpdfRenderer{company: company}
}

func (r *fpdfRenderer) newDocument(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetTitle(title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, r.companyName(), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	if r.company.Address != "" {
		doc.CellFormat(0, 5, r.company.Address, "", 1, "C", false, 0, "")
	}
	if r.company.Phone != "" {
		doc.CellFormat(0, 5, "Tel: "+r.company.Phone, "", 1, "C", false, 0, "")
	}
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	doc.Ln(2)

	return doc
}

func (r *fpdfRenderer) companyName() string {
	if r.company.Name == "" {
		return "Inventario"
	}

	return r.company.Name
}

// RenderInvoice renders the invoice for one committed sale. The footer carries
// a QR code encoding the sale reference so the printed copy can be looked up.
func (r *fpdfRenderer) RenderInvoice(sale *entity.Sale) ([]byte, error) {
	doc := r.newDocument("Invoice")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, lineHeight, "Sale: "+sale.ID.String(), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, "Date: "+sale.OccurredAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	if sale.Seller != nil {
		doc.CellFormat(0, lineHeight, "Seller: "+sale.Seller.Name, "", 1, "L", false, 0, "")
	}
	doc.Ln(3)

	widths := []float64{85, 25, 35, 35}
	headers := []string{"Product", "Qty", "Unit price", "Subtotal"}
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, line := range sale.Lines {
		name := line.ProductID.String()
		if line.Product != nil {
			name = line.Product.Name
		}
		doc.CellFormat(widths[0], 7, name, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[2], 7, formatMoney(line.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[3], 7, formatMoney(line.Subtotal), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(widths[3], 8, formatMoney(sale.Total), "1", 1, "R", false, 0, "")

	if err := r.stampQR(doc, "sale:"+sale.ID.String()); err != nil {
		return nil, err
	}

	return output(doc)
}

// RenderSalesReport renders the sales listing for a date range.
func (r *fpdfRenderer) RenderSalesReport(from, to time.Time, sales []*entity.Sale, total decimal.Decimal) ([]byte, error) {
	doc := r.newDocument("Sales report")

	doc.SetFont("Helvetica", "", 10)
	rangeLine := fmt.Sprintf("From %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	doc.CellFormat(0, lineHeight, rangeLine, "", 1, "L", false, 0, "")
	doc.Ln(3)

	widths := []float64{55, 45, 45, 35}
	headers := []string{"Sale", "Date", "Seller", "Total"}
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, sale := range sales {
		seller := ""
		if sale.Seller != nil {
			seller = sale.Seller.Name
		}
		doc.CellFormat(widths[0], 7, sale.ID.String()[:8], "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, sale.OccurredAt.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], 7, seller, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[3], 7, formatMoney(sale.Total), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(widths[0]+widths[1]+widths[2], 8, "Grand total", "1", 0, "R", false, 0, "")
	doc.CellFormat(widths[3], 8, formatMoney(total), "1", 1, "R", false, 0, "")

	return output(doc)
}

// RenderSellerTotals renders the per-user sales aggregation.
func (r *fpdfRenderer) RenderSellerTotals(generatedAt time.Time, rows []repository.UserSalesTotal) ([]byte, error) {
	doc := r.newDocument("Sales by user")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, lineHeight, "Generated: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	doc.Ln(3)

	widths := []float64{90, 40, 50}
	headers := []string{"User", "Sales", "Total"}
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.CellFormat(widths[0], 7, row.UserName, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, fmt.Sprintf("%d", row.Count), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[2], 7, formatMoney(row.Total), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	return output(doc)
}

func (r *fpdfRenderer) stampQR(doc *fpdf.Fpdf, content string) error {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSizePixel)
	if err != nil {
		return errors.Wrap(err, "failed to encode invoice QR code")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("invoice-qr", opts, bytes.NewReader(png))
	doc.Ln(6)
	doc.ImageOptions("invoice-qr", pageMargin, doc.GetY(), qrSizeMM, qrSizeMM, false, opts, 0, "")
	doc.SetY(doc.GetY() + qrSizeMM + 2)
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 4, "Scan to verify this sale", "", 1, "L", false, 0, "")

	return nil
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write PDF output")
	}

	return buf.Bytes(), nil
}
