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
	"github.com/shopspring/decimal"
)

// PurchaseHandler holds dependencies for purchase-related handlers.
type PurchaseHandler struct {
	uc     usecase.PurchaseUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.PurchaseUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, logger: logger}
}

type registerPurchaseRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" validate:"required"`
}

type purchaseView struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitCost    string    `json:"unitCost"`
	Total       string    `json:"total"`
	OccurredAt  time.Time `json:"occurredAt"`
	UserName    string    `json:"userName,omitempty"`
}

func toPurchaseView(purchase *entity.Purchase) purchaseView {
	view := purchaseView{
		ID:         purchase.ID.String(),
		ProductID:  purchase.ProductID.String(),
		Quantity:   purchase.Quantity,
		UnitCost:   purchase.UnitCost.StringFixed(2),
		Total:      purchase.Total.StringFixed(2),
		OccurredAt: purchase.OccurredAt,
	}
	if purchase.Product != nil {
		view.ProductName = purchase.Product.Name
	}
	if purchase.User != nil {
		view.UserName = purchase.User.Name
	}

	return view
}

// RegisterPurchase records a restock and credits the product's stock.
func (h *PurchaseHandler) RegisterPurchase(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req registerPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	purchase, err := h.uc.RegisterPurchase(c.Request().Context(), &usecase.RegisterPurchaseInput{
		Actor:     actor,
		ProductID: productID,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPurchaseView(purchase), "Purchase registered successfully")
}

// ListPurchases returns all restocks.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	purchases, err := h.uc.ListPurchases(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]purchaseView, 0, len(purchases))
	for _, purchase := range purchases {
		views = append(views, toPurchaseView(purchase))
	}

	return response.Success(c, http.StatusOK, views, "")
}
