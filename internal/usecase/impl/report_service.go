package impl

import (
	"context"
	"log/slog"
	"time"

	"inventario/config"
	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"
	"inventario/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo       repository.ReportRepository
	renderer         service.ReceiptRenderer
	topProductsLimit int
	monthsOfHistory  int
	logger           *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Renderer   service.ReceiptRenderer
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	topProductsLimit := 5
	monthsOfHistory := 6
	if params.Config != nil && params.Config.Reports != nil {
		topProductsLimit = params.Config.Reports.TopProductsLimit
		monthsOfHistory = params.Config.Reports.MonthsOfHistory
	}

	return &reportService{
		reportRepo:       params.ReportRepo,
		renderer:         params.Renderer,
		topProductsLimit: topProductsLimit,
		monthsOfHistory:  monthsOfHistory,
		logger:           params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// historyStart returns the lower bound of the configured report window.
func (srv *reportService) historyStart() time.Time {
	return time.Now().UTC().AddDate(0, -srv.monthsOfHistory, 0)
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("reports are restricted to administrators")
	}

	return nil
}

// SalesByMonth returns monthly totals over the configured history window.
func (srv *reportService) SalesByMonth(ctx context.Context, actor entity.Actor) ([]repository.MonthlyTotal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.SalesByMonth(ctx, srv.historyStart())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monthly sales report")
	}

	return totals, nil
}

// SalesBetween returns the sales within a date range and their grand total.
func (srv *reportService) SalesBetween(ctx context.Context, input *usecase.DateRangeInput) (*usecase.SalesBetweenOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	if input.To.Before(input.From) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("range end precedes range start").
			WrapMessage("invalid report range")
	}

	sales, err := srv.reportRepo.SalesBetween(ctx, input.From, input.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sales for date range")
	}

	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total)
	}

	return &usecase.SalesBetweenOutput{Sales: sales, Total: total}, nil
}

// TotalsByUser returns sale count and amount per recording user.
func (srv *reportService) TotalsByUser(ctx context.Context, actor entity.Actor) ([]repository.UserSalesTotal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.TotalsByUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load per-user sales report")
	}

	return totals, nil
}

// TotalsByCategory returns revenue per category over the history window.
func (srv *reportService) TotalsByCategory(ctx context.Context, actor entity.Actor) ([]repository.CategoryTotal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.TotalsByCategory(ctx, srv.historyStart())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load per-category sales report")
	}

	return totals, nil
}

// TopProducts returns the best selling products over the history window.
func (srv *reportService) TopProducts(ctx context.Context, actor entity.Actor) ([]repository.ProductUnits, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	units, err := srv.reportRepo.TopProducts(ctx, srv.historyStart(), srv.topProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top products report")
	}

	return units, nil
}

// ExportSalesBetween renders the date-range report as a PDF.
func (srv *reportService) ExportSalesBetween(ctx context.Context, input *usecase.DateRangeInput) ([]byte, error) {
	output, err := srv.SalesBetween(ctx, input)
	if err != nil {
		return nil, err
	}

	document, err := srv.renderer.RenderSalesReport(input.From, input.To, output.Sales, output.Total)
	if err != nil {
		srv.log(ctx).Error("Failed to render sales report", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render sales report")
	}

	return document, nil
}

// ExportTotalsByUser renders the per-user report as a PDF.
func (srv *reportService) ExportTotalsByUser(ctx context.Context, actor entity.Actor) ([]byte, error) {
	rows, err := srv.TotalsByUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	document, err := srv.renderer.RenderSellerTotals(time.Now().UTC(), rows)
	if err != nil {
		srv.log(ctx).Error("Failed to render per-user report", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render per-user report")
	}

	return document, nil
}
