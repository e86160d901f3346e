package impl

import (
	"io"
	"log/slog"

	"inventario/config"
	"inventario/internal/domain/entity"

	"github.com/google/uuid"
)

// newDiscardLogger creates a logger that discards all output, for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig creates a minimal configuration for tests.
func newTestConfig() *config.Config {
	cfg := &config.Config{
		Stock:   &config.StockConfig{AlertMargin: 2},
		Reports: &config.ReportsConfig{TopProductsLimit: 5, MonthsOfHistory: 6},
	}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "inventario-test"

	return cfg
}

func newAdminActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin, Active: true}
}

func newSellerActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller, Active: true}
}
