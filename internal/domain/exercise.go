// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the library.
// Definitions are shared: AI-imported plans get-or-create them by name,
// and the ExerciseDB sync can backfill metadata like the gif URL.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"` // Unique
	Slug        string             `bson:"slug" json:"slug"` // Unique, URL-safe
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	BodyPart         string   `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`   // e.g., "chest", "back"
	Target           string   `bson:"target,omitempty" json:"target,omitempty"`       // Primary muscle
	Equipment        string   `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g., "barbell", "body weight"
	GifURL           string   `bson:"gifUrl,omitempty" json:"gifUrl,omitempty"`
	SecondaryMuscles []string `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Instructions     []string `bson:"instructions,omitempty" json:"instructions,omitempty"`

	// MediaObjectKey points at a user-uploaded demo clip in object storage.
	// Internal use only; clients get a presigned URL instead.
	MediaObjectKey string `bson:"mediaObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
