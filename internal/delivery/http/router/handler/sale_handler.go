package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventario/internal/delivery/http/response"
	"inventario/internal/domain/entity"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SaleHandler holds dependencies for sale-related handlers.
type SaleHandler struct {
	uc     usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: logger}
}

type saleLineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type registerSaleRequest struct {
	Lines []saleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type saleLineView struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

type saleView struct {
	ID         string         `json:"id"`
	OccurredAt time.Time      `json:"occurredAt"`
	Total      string         `json:"total"`
	SellerID   string         `json:"sellerId"`
	SellerName string         `json:"sellerName,omitempty"`
	Lines      []saleLineView `json:"lines,omitempty"`
}

func toSaleView(sale *entity.Sale) saleView {
	view := saleView{
		ID:         sale.ID.String(),
		OccurredAt: sale.OccurredAt,
		Total:      sale.Total.StringFixed(2),
		SellerID:   sale.SellerID.String(),
	}
	if sale.Seller != nil {
		view.SellerName = sale.Seller.Name
	}
	for _, line := range sale.Lines {
		lineView := saleLineView{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Subtotal:  line.Subtotal.StringFixed(2),
		}
		if line.Product != nil {
			lineView.ProductName = line.Product.Name
		}
		view.Lines = append(view.Lines, lineView)
	}

	return view
}

func toSaleViews(sales []*entity.Sale) []saleView {
	views := make([]saleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, toSaleView(sale))
	}

	return views
}

// RegisterSale commits a new sale.
func (h *SaleHandler) RegisterSale(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req registerSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]usecase.SaleLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, parseErr := uuid.Parse(line.ProductID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id in sale line")
		}
		lines = append(lines, usecase.SaleLineInput{ProductID: productID, Quantity: line.Quantity})
	}

	sale, err := h.uc.RegisterSale(c.Request().Context(), &usecase.RegisterSaleInput{
		Actor: actor,
		Lines: lines,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSaleView(sale), "Sale registered successfully")
}

// GetSale returns one sale with its lines.
func (h *SaleHandler) GetSale(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	saleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sale, err := h.uc.GetSale(c.Request().Context(), actor, saleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSaleView(sale), "")
}

// ListSales returns all sales.
func (h *SaleHandler) ListSales(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	sales, err := h.uc.ListSales(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSaleViews(sales), "")
}

// ListOwnSales returns the acting user's sales.
func (h *SaleHandler) ListOwnSales(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	sales, err := h.uc.ListOwnSales(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSaleViews(sales), "")
}

// DownloadInvoice streams the PDF invoice for one sale.
func (h *SaleHandler) DownloadInvoice(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	saleID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	document, err := h.uc.RenderInvoice(c.Request().Context(), actor, saleID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="invoice-`+saleID.String()+`.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", document)
}
