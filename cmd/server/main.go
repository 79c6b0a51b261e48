package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SahO-ux/budget-tracker/internal/api"
	"github.com/SahO-ux/budget-tracker/internal/api/handlers"
	"github.com/SahO-ux/budget-tracker/internal/repository"
	"github.com/SahO-ux/budget-tracker/internal/service"
	"github.com/SahO-ux/budget-tracker/pkg/auth"
	"github.com/SahO-ux/budget-tracker/pkg/config"
	"github.com/SahO-ux/budget-tracker/pkg/logger"
	"github.com/SahO-ux/budget-tracker/pkg/mongodb"

	"go.uber.org/zap"
)

// @title Budget Tracker API
// @version 1.0
// @description Personal budget tracking: transactions, categories, monthly budgets and analytics

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting budget tracker service")

	// Initialize database
	ctx := context.Background()
	db, err := mongodb.Connect(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), db); err != nil {
			appLogger.Error("Database disconnect error", zap.Error(err))
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	transactionService := service.NewTransactionService(txRepo, categoryRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, txRepo, appLogger)
	analyticsService := service.NewAnalyticsService(txRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, appLogger)
	transactionHandler := handlers.NewTransactionHandler(transactionService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		categoryHandler,
		transactionHandler,
		budgetHandler,
		analyticsHandler,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
