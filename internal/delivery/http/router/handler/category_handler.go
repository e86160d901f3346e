package handler

import (
	"log/slog"
	"net/http"

	"inventario/internal/delivery/http/response"
	"inventario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory adds a new category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Actor: actor,
		Name:  req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListCategories returns all categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// DeleteCategory removes an empty category.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.uc.DeleteCategory(c.Request().Context(), &usecase.DeleteCategoryInput{
		Actor:      actor,
		CategoryID: categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
