// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"cantina/internal/handlers"
	"cantina/internal/middleware"
	"cantina/internal/repositories"
	"cantina/internal/services/auth"
	"cantina/internal/services/catalog"
	"cantina/internal/services/drawer"
	"cantina/internal/services/push"
	"cantina/internal/services/sale"
	"cantina/internal/services/transaction"
	"cantina/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	productRepo := repositories.NewProductRepository(db)
	saleRepo := repositories.NewSaleRepository(db, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(db, repositories.CacheService)
	drawerRepo := repositories.NewCashDrawerRepository(db)
	pushRepo := repositories.NewPushRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(productRepo)
	saleService := sale.NewService(saleRepo)
	transactionService := transaction.NewService(transactionRepo)
	drawerService := drawer.NewService(drawerRepo)
	pushService := push.NewService(pushRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService)
	saleHandler := handlers.NewSaleHandler(saleService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	drawerHandler := handlers.NewDrawerHandler(drawerService)
	pushHandler := handlers.NewPushHandler(pushService)
	statsHandler := handlers.NewStatsHandler(catalogService, transactionService)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.RefreshToken)
	api.Get("/products", productHandler.ListProducts)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Cantina API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Users
	protected.Get("/users", userHandler.ListUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Patch("/users/:id/role", middleware.RequireAdmin, userHandler.UpdateRole)
	protected.Patch("/users/:id/theme", userHandler.UpdateTheme)
	protected.Patch("/users/:id/notifications", userHandler.UpdateNotifications)

	// Catalog (writes are admin only)
	protected.Post("/products", middleware.RequireAdmin, productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireAdmin, productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireAdmin, productHandler.DeleteProduct)
	protected.Post("/products/:id/upload-image", middleware.RequireAdmin, productHandler.UploadProductImage)

	// Sales
	protected.Post("/sales", middleware.RequireSeller, saleHandler.CreateSale)
	protected.Get("/sales", saleHandler.ListSales)
	protected.Post("/sales/:id/cancel", middleware.RequireSeller, saleHandler.CancelSale)

	// Transactions
	protected.Post("/transactions", transactionHandler.CreateTransaction)
	protected.Get("/transactions", transactionHandler.ListTransactions)
	protected.Patch("/transactions/:id/review", middleware.RequireAdmin, transactionHandler.ReviewTransaction)

	// Cash drawer
	protected.Post("/cash-drawer", middleware.RequireSeller, drawerHandler.OpenDrawer)
	protected.Get("/cash-drawer/current", middleware.RequireSeller, drawerHandler.CurrentDrawer)
	protected.Get("/cash-drawer/history", middleware.RequireAdmin, drawerHandler.DrawerHistory)
	protected.Post("/cash-drawer/:id/close", drawerHandler.CloseDrawer)
	protected.Post("/cash-drawer/:id/add-sale", middleware.RequireSeller, drawerHandler.AddSaleToDrawer)

	// Push notifications
	protected.Post("/push/subscribe", pushHandler.Subscribe)
	protected.Post("/push/send", middleware.RequireAdmin, pushHandler.Send)

	// Stats
	protected.Get("/stats/low-stock", middleware.RequireAdmin, statsHandler.LowStock)
	protected.Get("/stats/pending-transactions", middleware.RequireAdmin, statsHandler.PendingTransactions)
}
