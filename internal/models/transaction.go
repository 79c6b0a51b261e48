package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryType classifies both transactions and categories. A transaction's
// type must match the type of the category it references.
type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
)

// ValidEntryType reports whether t is one of the known entry types.
func ValidEntryType(t EntryType) bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"user"`
	Amount     float64            `bson:"amount"`
	Type       EntryType          `bson:"type"`
	CategoryID primitive.ObjectID `bson:"category"`
	Note       string             `bson:"note"`
	IsDeleted  bool               `bson:"isDeleted"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`

	// CategoryName and CategoryType are populated by the list/get
	// lookups, never persisted on the transaction document.
	CategoryName string    `bson:"categoryName,omitempty"`
	CategoryType EntryType `bson:"categoryType,omitempty"`
}
