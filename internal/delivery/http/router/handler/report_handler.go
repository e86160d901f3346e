package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventario/internal/delivery/http/response"
	"inventario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// ReportHandler holds dependencies for report-related handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

// dateRange parses the from/to query parameters. The range is inclusive on
// both ends, so the upper bound is pushed to the end of its day.
func (h *ReportHandler) dateRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid or missing 'from' query parameter, expected YYYY-MM-DD")
	}

	to, err := time.Parse(dateLayout, c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid or missing 'to' query parameter, expected YYYY-MM-DD")
	}

	return from, to.AddDate(0, 0, 1).Add(-time.Second), nil
}

// SalesByMonth returns monthly sale totals.
func (h *ReportHandler) SalesByMonth(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	totals, err := h.uc.SalesByMonth(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// SalesBetween returns the sales within a date range and their total.
func (h *ReportHandler) SalesBetween(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	from, to, err := h.dateRange(c)
	if err != nil {
		return err
	}

	output, err := h.uc.SalesBetween(c.Request().Context(), &usecase.DateRangeInput{
		Actor: actor,
		From:  from,
		To:    to,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"sales": toSaleViews(output.Sales),
		"total": output.Total.StringFixed(2),
	}, "")
}

// TotalsByUser returns sale count and amount per user.
func (h *ReportHandler) TotalsByUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	totals, err := h.uc.TotalsByUser(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// TotalsByCategory returns revenue per category.
func (h *ReportHandler) TotalsByCategory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	totals, err := h.uc.TotalsByCategory(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// TopProducts returns the best selling products.
func (h *ReportHandler) TopProducts(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	units, err := h.uc.TopProducts(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, units, "")
}

// ExportSalesBetween streams the date-range report as a PDF.
func (h *ReportHandler) ExportSalesBetween(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	from, to, err := h.dateRange(c)
	if err != nil {
		return err
	}

	document, err := h.uc.ExportSalesBetween(c.Request().Context(), &usecase.DateRangeInput{
		Actor: actor,
		From:  from,
		To:    to,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", document)
}

// ExportTotalsByUser streams the per-user report as a PDF.
func (h *ReportHandler) ExportTotalsByUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	document, err := h.uc.ExportTotalsByUser(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales-by-user.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", document)
}
