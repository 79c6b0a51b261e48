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
	"go.uber.org/zap"
)

// TransactionFilter narrows List/Count. Zero values mean "no predicate";
// range bounds are pointers so an explicit 0 still filters.
type TransactionFilter struct {
	UserID     primitive.ObjectID
	CategoryID *primitive.ObjectID
	Type       models.EntryType
	MinAmount  *float64
	MaxAmount  *float64
	StartDate  *time.Time
	EndDate    *time.Time
	Sort       bson.D
	Skip       int64
	Limit      int64
}

func (f *TransactionFilter) query() bson.M {
	query := bson.M{"user": f.UserID, "isDeleted": false}

	if f.CategoryID != nil {
		query["category"] = *f.CategoryID
	}
	if f.Type != "" {
		query["type"] = f.Type
	}

	amount := bson.M{}
	if f.MinAmount != nil {
		amount["$gte"] = *f.MinAmount
	}
	if f.MaxAmount != nil {
		amount["$lte"] = *f.MaxAmount
	}
	if len(amount) > 0 {
		query["amount"] = amount
	}

	created := bson.M{}
	if f.StartDate != nil {
		created["$gte"] = *f.StartDate
	}
	if f.EndDate != nil {
		created["$lte"] = *f.EndDate
	}
	if len(created) > 0 {
		query["createdAt"] = created
	}

	return query
}

type TransactionRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewTransactionRepository(db *mongo.Database, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		coll:   db.Collection(mongodb.TransactionsCollection),
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	res, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tx.ID = oid
	}
	return nil
}

// GetByID returns the transaction with its category name/type joined
// in, or (nil, nil) when absent.
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Transaction, error) {
	match := bson.M{"_id": id, "user": userID, "isDeleted": false}

	txs, err := r.findWithCategory(ctx, match, nil, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return &txs[0], nil
}

// List returns the page of transactions matching the filter together
// with the total match count.
func (r *TransactionRepository) List(ctx context.Context, filter *TransactionFilter) ([]models.Transaction, int64, error) {
	query := filter.query()

	sort := filter.Sort
	if len(sort) == 0 {
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}

	txs, err := r.findWithCategory(ctx, query, sort, filter.Skip, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return txs, total, nil
}

func (r *TransactionRepository) findWithCategory(ctx context.Context, match bson.M, sort bson.D, skip, limit int64) ([]models.Transaction, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CategoriesCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryDoc",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"categoryName": "$categoryDoc.name",
			"categoryType": "$categoryDoc.type",
		}}},
		bson.D{{Key: "$project", Value: bson.M{"categoryDoc": 0}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	txs := []models.Transaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

// TransactionUpdate carries the optional field updates; nil means
// "leave as is".
type TransactionUpdate struct {
	Amount     *float64
	Type       *models.EntryType
	CategoryID *primitive.ObjectID
	Note       *string
}

// Update applies the given field updates; reports whether a matching
// transaction existed.
func (r *TransactionRepository) Update(ctx context.Context, userID, id primitive.ObjectID, upd TransactionUpdate) (bool, error) {
	filter := bson.M{"_id": id, "user": userID, "isDeleted": false}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Amount != nil {
		set["amount"] = *upd.Amount
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.CategoryID != nil {
		set["category"] = *upd.CategoryID
	}
	if upd.Note != nil {
		set["note"] = *upd.Note
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update transaction: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *TransactionRepository) SoftDelete(ctx context.Context, userID, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "user": userID, "isDeleted": false}
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// CategorySummary groups the user's non-deleted transactions by
// category, summing amounts and carrying the first-seen type, with the
// category name joined in (left-outer, so rows survive a deleted
// category). Rows come back sorted by totalAmount descending; ties keep
// the store's group order.
func (r *TransactionRepository) CategorySummary(ctx context.Context, userID primitive.ObjectID) ([]models.CategorySummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user": userID, "isDeleted": false}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$category",
			"totalAmount": bson.M{"$sum": "$amount"},
			"type":        bson.M{"$first": "$type"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CategoriesCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"categoryId":   "$_id",
			"categoryName": "$category.name",
			"type":         1,
			"totalAmount":  1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalAmount", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category summary: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.CategorySummary{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode category summary: %w", err)
	}
	return rows, nil
}

// MonthlySummary groups the user's non-deleted transactions by
// (year, month, type) of createdAt, sorted ascending by (year, month).
// Rows are returned in the store's grouped shape; the service layer
// normalizes them.
func (r *TransactionRepository) MonthlySummary(ctx context.Context, userID primitive.ObjectID) ([]models.MonthlyGroupRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user": userID, "isDeleted": false}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
				"type":  "$type",
			},
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly summary: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.MonthlyGroupRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode monthly summary: %w", err)
	}
	return rows, nil
}

// SumAmountByType sums the user's non-deleted transactions of the given
// type inside [start, end). Returns 0 when nothing matches.
func (r *TransactionRepository) SumAmountByType(ctx context.Context, userID primitive.ObjectID, entryType models.EntryType, start, end time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"user":      userID,
			"type":      entryType,
			"isDeleted": false,
			"createdAt": bson.M{"$gte": start, "$lt": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate amount total: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode amount total: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("failed to read amount total: %w", err)
	}

	return result.Total, nil
}
