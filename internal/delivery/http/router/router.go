// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventario/internal/delivery/http/middleware"
	"inventario/internal/delivery/http/router/handler"
	"inventario/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	SaleHandler     *handler.SaleHandler
	PurchaseHandler *handler.PurchaseHandler
	ReportHandler   *handler.ReportHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	saleHandler     *handler.SaleHandler
	purchaseHandler *handler.PurchaseHandler
	reportHandler   *handler.ReportHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		saleHandler:     params.SaleHandler,
		purchaseHandler: params.PurchaseHandler,
		reportHandler:   params.ReportHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Routes shared by every authenticated user
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/profile", r.userHandler.GetProfile)
		apiGroup.PUT("/profile", r.userHandler.UpdateProfile)
		apiGroup.PUT("/profile/password", r.userHandler.ChangePassword)

		apiGroup.GET("/categories", r.categoryHandler.ListCategories)
		apiGroup.GET("/products", r.productHandler.ListProducts)
		apiGroup.GET("/products/alerts", r.productHandler.LowStockAlerts)
		apiGroup.GET("/products/:id", r.productHandler.GetProduct)

		apiGroup.POST("/sales", r.saleHandler.RegisterSale)
		apiGroup.GET("/sales/mine", r.saleHandler.ListOwnSales)
		apiGroup.GET("/sales/:id", r.saleHandler.GetSale)
		apiGroup.GET("/sales/:id/invoice", r.saleHandler.DownloadInvoice)
	}

	// Administration routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/users", r.userHandler.RegisterUser)
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.PATCH("/users/:id/active", r.userHandler.SetUserActive)

		adminGroup.POST("/categories", r.categoryHandler.CreateCategory)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.DeleteCategory)

		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		adminGroup.GET("/sales", r.saleHandler.ListSales)

		adminGroup.POST("/purchases", r.purchaseHandler.RegisterPurchase)
		adminGroup.GET("/purchases", r.purchaseHandler.ListPurchases)

		adminGroup.GET("/reports/monthly", r.reportHandler.SalesByMonth)
		adminGroup.GET("/reports/range", r.reportHandler.SalesBetween)
		adminGroup.GET("/reports/range/export", r.reportHandler.ExportSalesBetween)
		adminGroup.GET("/reports/users", r.reportHandler.TotalsByUser)
		adminGroup.GET("/reports/users/export", r.reportHandler.ExportTotalsByUser)
		adminGroup.GET("/reports/categories", r.reportHandler.TotalsByCategory)
		adminGroup.GET("/reports/top-products", r.reportHandler.TopProducts)
	}
}
