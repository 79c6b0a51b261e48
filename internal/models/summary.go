package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategorySummary is one rollup row: total amount per category across
// the user's whole (non-deleted) transaction history. Derived data,
// never persisted.
type CategorySummary struct {
	CategoryID   primitive.ObjectID `bson:"categoryId"`
	CategoryName string             `bson:"categoryName"`
	Type         EntryType          `bson:"type"`
	TotalAmount  float64            `bson:"totalAmount"`
}

// MonthlyGroupKey is the composite grouping key of the monthly rollup.
type MonthlyGroupKey struct {
	Year  int       `bson:"year"`
	Month int       `bson:"month"`
	Type  EntryType `bson:"type"`
}

// MonthlyGroupRow is a monthly rollup row as emitted by the store.
// Grouped pipelines carry the key in _id; flattened rows produced by
// older pipelines carry year/month/type at the top level. Exactly one
// of the two shapes is populated; the service layer folds both into a
// canonical MonthSummary.
type MonthlyGroupRow struct {
	Key         *MonthlyGroupKey `bson:"_id,omitempty"`
	Year        int              `bson:"year,omitempty"`
	Month       int              `bson:"month,omitempty"`
	Type        EntryType        `bson:"type,omitempty"`
	TotalAmount float64          `bson:"totalAmount"`
}

// MonthSummary is the canonical monthly rollup row.
type MonthSummary struct {
	Year        int       `bson:"year"`
	Month       int       `bson:"month"`
	Type        EntryType `bson:"type"`
	TotalAmount float64   `bson:"totalAmount"`
	MonthKey    string    `bson:"monthKey"` // zero-padded "YYYY-MM"
}
