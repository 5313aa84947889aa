package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Profile context fed into AI workout generation. All optional.
	FitnessLevel string   `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"` // e.g., "Beginner", "Intermediate"
	Goals        []string `bson:"goals,omitempty" json:"goals,omitempty"`               // e.g., "Build muscle", "Lose weight"
	Injuries     []string `bson:"injuries,omitempty" json:"injuries,omitempty"`         // e.g., "Lower back"
}
