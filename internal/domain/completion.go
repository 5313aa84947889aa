package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompletionLog records that a plan's occurrence on a specific date was
// marked done. At most one row may exist per (owner, plan, date) triple;
// the completions collection enforces this with a unique compound index.
type CompletionLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	PlanID        primitive.ObjectID `bson:"planId" json:"planId"`
	DateCompleted time.Time          `bson:"dateCompleted" json:"dateCompleted"` // UTC midnight
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
