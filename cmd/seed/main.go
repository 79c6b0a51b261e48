package main

import (
	"context"
	"log"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/internal/repository"
	"github.com/SahO-ux/budget-tracker/pkg/auth"
	"github.com/SahO-ux/budget-tracker/pkg/config"
	"github.com/SahO-ux/budget-tracker/pkg/logger"
	"github.com/SahO-ux/budget-tracker/pkg/mongodb"

	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo1234"
)

// Seeds a demo user with a few months of categorized transactions and
// budgets, for local development against a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = mongodb.Disconnect(context.Background(), db)
	}()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	existing, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		appLogger.Fatal("Failed to check demo user", zap.Error(err))
	}
	if existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", demoEmail))
		return
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:         "Demo User",
		Email:        demoEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	categories := []*models.Category{
		{UserID: user.ID, Name: "Food", Type: models.TypeExpense, Color: "#e74c3c", CreatedAt: now, UpdatedAt: now},
		{UserID: user.ID, Name: "Transport", Type: models.TypeExpense, Color: "#3498db", CreatedAt: now, UpdatedAt: now},
		{UserID: user.ID, Name: "Entertainment", Type: models.TypeExpense, Color: "#9b59b6", CreatedAt: now, UpdatedAt: now},
		{UserID: user.ID, Name: "Salary", Type: models.TypeIncome, Color: "#2ecc71", CreatedAt: now, UpdatedAt: now},
	}
	for _, category := range categories {
		if err := categoryRepo.Create(ctx, category); err != nil {
			appLogger.Fatal("Failed to create category", zap.String("name", category.Name), zap.Error(err))
		}
	}
	food, transport, fun, salary := categories[0], categories[1], categories[2], categories[3]

	// Three months of history ending in the current month.
	for back := 2; back >= 0; back-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)

		txs := []*models.Transaction{
			{UserID: user.ID, Amount: 5000, Type: models.TypeIncome, CategoryID: salary.ID, Note: "Monthly salary", CreatedAt: monthStart.AddDate(0, 0, 1)},
			{UserID: user.ID, Amount: 320.50, Type: models.TypeExpense, CategoryID: food.ID, Note: "Groceries", CreatedAt: monthStart.AddDate(0, 0, 3)},
			{UserID: user.ID, Amount: 45, Type: models.TypeExpense, CategoryID: transport.ID, Note: "Metro pass", CreatedAt: monthStart.AddDate(0, 0, 5)},
			{UserID: user.ID, Amount: 89.99, Type: models.TypeExpense, CategoryID: fun.ID, Note: "Concert tickets", CreatedAt: monthStart.AddDate(0, 0, 12)},
			{UserID: user.ID, Amount: 210, Type: models.TypeExpense, CategoryID: food.ID, Note: "Restaurants", CreatedAt: monthStart.AddDate(0, 0, 18)},
		}
		for _, tx := range txs {
			tx.UpdatedAt = tx.CreatedAt
			if err := txRepo.Create(ctx, tx); err != nil {
				appLogger.Fatal("Failed to create transaction", zap.Error(err))
			}
		}

		month := monthStart.Format("2006-01")
		if _, err := budgetRepo.Upsert(ctx, user.ID, month, 1500); err != nil {
			appLogger.Fatal("Failed to set budget", zap.String("month", month), zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword),
	)
}
