// internal/domain/plan.go
package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan validation errors.
var (
	ErrInvalidWeekday   = errors.New("recurring day must be between Monday (0) and Sunday (6)")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// WorkoutPlan is a user's scheduled exercise with its recurrence rule.
// A plan recurs weekly on RecurringDay within [StartDate, EndDate]. A nil
// EndDate means the plan is open-ended and expansion is bounded by the
// caller's horizon. AI-imported plans are single-day: StartDate == EndDate
// and RecurringDay matches that date's weekday.
type WorkoutPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID    primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`

	CurrentWeight   float64 `bson:"currentWeight" json:"currentWeight"`
	Reps            int     `bson:"reps" json:"reps"`
	PercentIncrease int     `bson:"percentIncrease" json:"percentIncrease"` // 0-100, steps of 5

	StartDate    time.Time  `bson:"startDate" json:"startDate"`
	EndDate      *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	RecurringDay Weekday    `bson:"recurringDay" json:"recurringDay"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GoalWeight returns the target weight after applying the percent increase.
func (p *WorkoutPlan) GoalWeight() float64 {
	return p.CurrentWeight * (1 + float64(p.PercentIncrease)/100)
}

// Validate checks the recurrence fields before the plan is persisted.
func (p *WorkoutPlan) Validate() error {
	if !p.RecurringDay.Valid() {
		return ErrInvalidWeekday
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
