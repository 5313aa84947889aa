package repository

import (
	"context"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate entry")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// ExerciseRepository defines the interface for interacting with the
// exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
}

// PlanRepository defines the interface for interacting with workout plans.
// Owner-scoped methods fold ownership into the query filter so a plan
// belonging to another user is indistinguishable from a missing one.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}

// CompletionRepository defines the interface for interacting with workout
// completion rows. Create must surface ErrDuplicate when the (owner, plan,
// date) triple already exists; the unique index behind it is what makes
// concurrent toggles safe.
type CompletionRepository interface {
	Create(ctx context.Context, log *domain.CompletionLog) (primitive.ObjectID, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.CompletionLog, error)
	DeleteByOccurrence(ctx context.Context, ownerID, planID primitive.ObjectID, date time.Time) (int64, error)
	DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error
}
