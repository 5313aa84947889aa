package calendar

import (
	"testing"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCompletionSet(t *testing.T) {
	planID := primitive.NewObjectID()
	logs := []domain.CompletionLog{
		{PlanID: planID, DateCompleted: date(2025, time.March, 5)},
		// Non-normalized timestamps must land on the same key as their date.
		{PlanID: planID, DateCompleted: time.Date(2025, time.March, 12, 18, 30, 0, 0, time.UTC)},
	}

	set := CompletionSet(logs)
	assert.Len(t, set, 2)
	assert.Contains(t, set, CompletionKey{PlanID: planID, Date: date(2025, time.March, 5)})
	assert.Contains(t, set, CompletionKey{PlanID: planID, Date: date(2025, time.March, 12)})
}

func TestOverlay(t *testing.T) {
	benchID := primitive.NewObjectID()
	squatID := primitive.NewObjectID()
	benchPlanID := primitive.NewObjectID()
	squatPlanID := primitive.NewObjectID()

	end := date(2025, time.March, 12)
	plans := []domain.WorkoutPlan{
		{
			ID:           benchPlanID,
			ExerciseID:   benchID,
			StartDate:    date(2025, time.March, 3),
			EndDate:      &end,
			RecurringDay: domain.Wednesday,
		},
		{
			ID:           squatPlanID,
			ExerciseID:   squatID,
			StartDate:    date(2025, time.March, 3),
			EndDate:      &end,
			RecurringDay: domain.Wednesday,
		},
	}
	exercises := map[primitive.ObjectID]domain.Exercise{
		benchID: {ID: benchID, Name: "Bench Press", GifURL: "https://example.com/bench.gif"},
		squatID: {ID: squatID, Name: "Squat"},
	}
	completed := map[CompletionKey]struct{}{
		{PlanID: benchPlanID, Date: date(2025, time.March, 5)}: {},
	}

	events := Overlay(plans, exercises, completed, date(2025, time.June, 1))
	require.Len(t, events, 4)

	// Grouped by date ascending; plan input order preserved within a date.
	assert.Equal(t, date(2025, time.March, 5), events[0].Date)
	assert.Equal(t, date(2025, time.March, 5), events[1].Date)
	assert.Equal(t, date(2025, time.March, 12), events[2].Date)
	assert.Equal(t, date(2025, time.March, 12), events[3].Date)
	assert.Equal(t, benchPlanID, events[0].PlanID)
	assert.Equal(t, squatPlanID, events[1].PlanID)

	assert.Equal(t, "Bench Press", events[0].Title)
	assert.Equal(t, "https://example.com/bench.gif", events[0].GifURL)

	// Only the logged (plan, date) pair is marked completed.
	assert.True(t, events[0].Completed)
	assert.Equal(t, ColorCompleted, events[0].Color)
	assert.False(t, events[1].Completed)
	assert.Equal(t, ColorScheduled, events[1].Color)
	assert.False(t, events[2].Completed)
	assert.Equal(t, ColorScheduled, events[2].Color)
}

func TestOverlay_MissingExercise(t *testing.T) {
	planID := primitive.NewObjectID()
	end := date(2025, time.March, 5)
	plans := []domain.WorkoutPlan{
		{
			ID:           planID,
			ExerciseID:   primitive.NewObjectID(),
			StartDate:    date(2025, time.March, 5),
			EndDate:      &end,
			RecurringDay: domain.Wednesday,
		},
	}

	events := Overlay(plans, nil, nil, date(2025, time.June, 1))
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Title)
	assert.False(t, events[0].Completed)
}

func TestOverlay_NoPlans(t *testing.T) {
	assert.Empty(t, Overlay(nil, nil, nil, date(2025, time.June, 1)))
}
