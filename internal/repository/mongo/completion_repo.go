// internal/repository/mongo/completion_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const completionCollectionName = "completions"

// mongoCompletionRepository implements repository.CompletionRepository
type mongoCompletionRepository struct {
	collection *mongo.Collection
}

// NewMongoCompletionRepository creates a new CompletionLog repository.
func NewMongoCompletionRepository(db *mongo.Database) repository.CompletionRepository {
	return &mongoCompletionRepository{
		collection: db.Collection(completionCollectionName),
	}
}

// Create inserts a completion row. The unique compound index on
// (ownerId, planId, dateCompleted) turns a second concurrent insert for
// the same occurrence into ErrDuplicate instead of a second row, which is
// what keeps toggling idempotent under races.
func (r *mongoCompletionRepository) Create(ctx context.Context, log *domain.CompletionLog) (primitive.ObjectID, error) {
	if log.OwnerID == primitive.NilObjectID || log.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("completion requires ownerId and planId")
	}

	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted completion ID")
	}
	return insertedID, nil
}

// GetByOwnerID retrieves all completion rows for a user, newest first.
func (r *mongoCompletionRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.CompletionLog, error) {
	var logs []domain.CompletionLog
	filter := bson.M{"ownerId": ownerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "dateCompleted", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteByOccurrence removes the completion row(s) for one occurrence and
// returns how many were deleted. Zero deletions is not an error; unmarking
// an already-unmarked occurrence is a no-op.
func (r *mongoCompletionRepository) DeleteByOccurrence(ctx context.Context, ownerID, planID primitive.ObjectID, date time.Time) (int64, error) {
	filter := bson.M{
		"ownerId":       ownerID,
		"planId":        planID,
		"dateCompleted": date,
	}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByPlanID removes all completion rows for a plan. Called when the
// plan itself is deleted so no orphaned completions remain.
func (r *mongoCompletionRepository) DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"planId": planID})
	return err
}

// EnsureCompletionIndexes creates necessary indexes. The unique compound
// index is load-bearing: it closes the check-then-act race between two
// concurrent "mark complete" calls.
func EnsureCompletionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "ownerId", Value: 1},
				{Key: "planId", Value: 1},
				{Key: "dateCompleted", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Warnf("Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
