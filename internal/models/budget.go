package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget is the monthly spending cap, unique per (user, month).
type Budget struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	Month     string             `bson:"month"` // "YYYY-MM"
	Amount    float64            `bson:"amount"`
	IsDeleted bool               `bson:"isDeleted"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
