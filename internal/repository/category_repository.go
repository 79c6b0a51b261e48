package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewCategoryRepository(db *mongo.Database, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		coll:   db.Collection(mongodb.CategoriesCollection),
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	res, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return nil
}

// GetByName matches the category name case-insensitively among the
// user's non-deleted categories. Returns (nil, nil) when absent.
func (r *CategoryRepository) GetByName(ctx context.Context, userID primitive.ObjectID, name string) (*models.Category, error) {
	filter := bson.M{
		"user":      userID,
		"isDeleted": false,
		"name": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(name) + "$",
			Options: "i",
		},
	}

	var category models.Category
	err := r.coll.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Category, error) {
	filter := bson.M{"_id": id, "user": userID, "isDeleted": false}

	var category models.Category
	err := r.coll.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Category, int64, error) {
	filter := bson.M{"user": userID, "isDeleted": false}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, 0, fmt.Errorf("failed to decode categories: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return categories, total, nil
}

// CategoryUpdate carries the optional field updates; nil means "leave as is".
type CategoryUpdate struct {
	Name  *string
	Type  *models.EntryType
	Color *string
}

// Update applies the given field updates and returns the new document,
// or (nil, nil) when the category does not exist for the user.
func (r *CategoryRepository) Update(ctx context.Context, userID, id primitive.ObjectID, upd CategoryUpdate) (*models.Category, error) {
	filter := bson.M{"_id": id, "user": userID, "isDeleted": false}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Color != nil {
		set["color"] = *upd.Color
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category models.Category
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// SoftDelete flags the category; reads filter it out from then on.
// Returns false when nothing matched.
func (r *CategoryRepository) SoftDelete(ctx context.Context, userID, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "user": userID, "isDeleted": false}
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return res.MatchedCount > 0, nil
}
