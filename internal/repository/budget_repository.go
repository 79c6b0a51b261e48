package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewBudgetRepository(db *mongo.Database, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		coll:   db.Collection(mongodb.BudgetsCollection),
		logger: logger,
	}
}

// Upsert creates or overwrites the single budget document keyed by
// (user, month) and returns the resulting document. The unique index on
// (user, month) guarantees one document per key under concurrent calls.
func (r *BudgetRepository) Upsert(ctx context.Context, userID primitive.ObjectID, month string, amount float64) (*models.Budget, error) {
	now := time.Now().UTC()

	filter := bson.M{"user": userID, "month": month}
	update := bson.M{
		"$set": bson.M{"amount": amount, "isDeleted": false, "updatedAt": now},
		"$setOnInsert": bson.M{
			"user":      userID,
			"month":     month,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var budget models.Budget
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return &budget, nil
}

// GetByMonth returns (nil, nil) when no budget is set for the month.
func (r *BudgetRepository) GetByMonth(ctx context.Context, userID primitive.ObjectID, month string) (*models.Budget, error) {
	filter := bson.M{"user": userID, "month": month, "isDeleted": false}

	var budget models.Budget
	err := r.coll.FindOne(ctx, filter).Decode(&budget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &budget, nil
}

// List returns one page of the user's budgets, newest month first,
// together with the total count for pagination.
func (r *BudgetRepository) List(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Budget, int64, error) {
	filter := bson.M{"user": userID, "isDeleted": false}

	opts := options.Find().
		SetSort(bson.D{{Key: "month", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, 0, fmt.Errorf("failed to decode budgets: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count budgets: %w", err)
	}

	return budgets, total, nil
}
