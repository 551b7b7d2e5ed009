// Package routes wires repositories, services and handlers into the HTTP
// routing table.
package routes

import (
	"dwallet/internal/config"
	"dwallet/internal/handlers"
	"dwallet/internal/middleware"
	"dwallet/internal/models"
	"dwallet/internal/repositories"
	"dwallet/internal/repositories/cache"
	"dwallet/internal/services/auth"
	"dwallet/internal/services/transaction"
	"dwallet/internal/services/transfer"
	"dwallet/internal/services/user"
	"dwallet/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph and registers all routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	ledgerRepo := repositories.NewLedgerRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	userRepo := repositories.NewUserRepository(db)

	jwtSecret := config.GetEnv("JWT_SECRET", "dev-secret")
	authService := auth.NewService(userRepo, auth.Config{
		JWTSecret: jwtSecret,
		TokenTTL:  config.GetDurationEnv("JWT_TTL", 0),
	})

	var walletCache wallet.Cache
	var transferCache transfer.Invalidator
	if cacheService != nil {
		walletCache = cacheService
		transferCache = cacheService
	}

	walletService := wallet.NewService(ledgerRepo, walletCache)
	transferService := transfer.NewService(ledgerRepo, transferCache, nil)
	transactionService := transaction.NewService(transactionRepo)
	userService := user.NewService(userRepo, walletService)

	walletHandler := handlers.NewWalletHandler(walletService, transferService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	userHandler := handlers.NewUserHandler(userService, authService)
	adminHandler := handlers.NewAdminHandler(userService, walletService, ledgerRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtSecret)

	app.Get("/health", handlers.Health)

	api := app.Group("/api/v1")

	api.Post("/users/register", userHandler.Register)
	api.Post("/auth/login", userHandler.Login)

	wallets := api.Group("/wallets", authMiddleware.Handler)
	wallets.Get("/me", middleware.RequireRoles(models.RoleUser, models.RoleAgent), walletHandler.GetWallet)
	wallets.Post("/top-up", middleware.RequireRoles(models.RoleUser), walletHandler.TopUp)
	wallets.Post("/withdraw", middleware.RequireRoles(models.RoleUser), walletHandler.Withdraw)
	wallets.Post("/send-money", middleware.RequireRoles(models.RoleUser), walletHandler.SendMoney)
	wallets.Post("/cash-in", middleware.RequireRoles(models.RoleAgent), walletHandler.CashIn)
	wallets.Post("/cash-out", middleware.RequireRoles(models.RoleAgent), walletHandler.CashOut)

	transactions := api.Group("/transactions", authMiddleware.Handler)
	transactions.Get("/me", middleware.RequireRoles(models.RoleUser, models.RoleAgent), transactionHandler.ListMyTransactions)

	admin := api.Group("/admin", authMiddleware.Handler, middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/wallets", adminHandler.ListWallets)
	admin.Get("/transactions", adminHandler.ListTransactions)
	admin.Patch("/wallets/:id/status", adminHandler.SetWalletStatus)
	admin.Patch("/agents/:id/approval", adminHandler.SetAgentApproval)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
