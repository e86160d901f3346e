package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventario/internal/delivery/http/response"
	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type createProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	InitialStock int             `json:"initialStock" validate:"min=0"`
	MinStock     int             `json:"minStock" validate:"min=0"`
	CategoryID   string          `json:"categoryId" validate:"required,uuid"`
}

type updateProductRequest struct {
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	MinStock   int             `json:"minStock" validate:"min=0"`
	CategoryID string          `json:"categoryId" validate:"required,uuid"`
}

type productView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
	Category  any    `json:"category,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProductView(product *entity.Product) productView {
	view := productView{
		ID:        product.ID.String(),
		Name:      product.Name,
		Price:     product.Price.StringFixed(2),
		Stock:     product.Stock,
		MinStock:  product.MinStock,
		UpdatedAt: product.UpdatedAt,
	}
	if product.Category != nil {
		view.Category = map[string]string{
			"id":   product.Category.ID.String(),
			"name": product.Category.Name,
		}
	}

	return view
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

// CreateProduct adds a catalog item.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Actor:        actor,
		Name:         req.Name,
		Price:        req.Price,
		InitialStock: req.InitialStock,
		MinStock:     req.MinStock,
		CategoryID:   categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// GetProduct returns one product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// ListProducts returns the catalog, optionally filtered by name substring
// and category.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	search := repository.ProductSearch{Name: c.QueryParam("name")}

	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid categoryId query parameter")
		}
		search.CategoryID = &categoryID
	}

	products, err := h.uc.ListProducts(c.Request().Context(), search)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// UpdateProduct applies catalog changes to one product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		Actor:      actor,
		ProductID:  productID,
		Name:       req.Name,
		Price:      req.Price,
		MinStock:   req.MinStock,
		CategoryID: categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct removes a catalog item.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.uc.DeleteProduct(c.Request().Context(), &usecase.DeleteProductInput{
		Actor:     actor,
		ProductID: productID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// LowStockAlerts returns the products inside the low-stock alert window.
func (h *ProductHandler) LowStockAlerts(c echo.Context) error {
	products, err := h.uc.LowStockAlerts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}
