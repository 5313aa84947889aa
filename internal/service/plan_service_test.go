package service

import (
	"context"
	"testing"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type planFixture struct {
	planRepo       *fakePlanRepo
	exerciseRepo   *fakeExerciseRepo
	completionRepo *fakeCompletionRepo
	service        PlanService
	ownerID        primitive.ObjectID
}

func newPlanFixture() *planFixture {
	f := &planFixture{
		planRepo:       newFakePlanRepo(),
		exerciseRepo:   newFakeExerciseRepo(),
		completionRepo: newFakeCompletionRepo(),
		ownerID:        primitive.NewObjectID(),
	}
	f.service = NewPlanService(f.planRepo, f.exerciseRepo, f.completionRepo)
	return f
}

func (f *planFixture) addExercise(t *testing.T, name string) *domain.Exercise {
	t.Helper()
	exercise := &domain.Exercise{Name: name, Slug: name}
	_, err := f.exerciseRepo.Create(context.Background(), exercise)
	require.NoError(t, err)
	return exercise
}

func TestPlanService_CreatePlan(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	exercise := f.addExercise(t, "Bench Press")

	// Timestamps with time components get normalized to their dates.
	start := time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 7, 9, 0, 0, 0, time.UTC)

	plan, err := f.service.CreatePlan(ctx, f.ownerID, exercise.ID, 100, 8, 15, start, &end, domain.Wednesday)
	require.NoError(t, err)
	assert.False(t, plan.ID.IsZero())
	assert.Equal(t, date(2025, time.March, 3), plan.StartDate)
	require.NotNil(t, plan.EndDate)
	assert.Equal(t, date(2025, time.April, 7), *plan.EndDate)
	assert.InDelta(t, 115.0, plan.GoalWeight(), 0.001)
}

func TestPlanService_CreatePlan_OpenEnded(t *testing.T) {
	f := newPlanFixture()
	exercise := f.addExercise(t, "Squat")

	plan, err := f.service.CreatePlan(context.Background(), f.ownerID, exercise.ID, 80, 5, 10, date(2025, time.March, 3), nil, domain.Friday)
	require.NoError(t, err)
	assert.Nil(t, plan.EndDate)
}

func TestPlanService_CreatePlan_UnknownExercise(t *testing.T) {
	f := newPlanFixture()

	_, err := f.service.CreatePlan(context.Background(), f.ownerID, primitive.NewObjectID(), 100, 8, 15, date(2025, time.March, 3), nil, domain.Wednesday)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestPlanService_CreatePlan_InvalidRecurrence(t *testing.T) {
	f := newPlanFixture()
	exercise := f.addExercise(t, "Deadlift")
	ctx := context.Background()

	_, err := f.service.CreatePlan(ctx, f.ownerID, exercise.ID, 100, 8, 15, date(2025, time.March, 3), nil, domain.Weekday(7))
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)

	end := date(2025, time.February, 1)
	_, err = f.service.CreatePlan(ctx, f.ownerID, exercise.ID, 100, 8, 15, date(2025, time.March, 3), &end, domain.Wednesday)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestPlanService_GetMyPlans(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	bench := f.addExercise(t, "Bench Press")
	squat := f.addExercise(t, "Squat")

	_, err := f.service.CreatePlan(ctx, f.ownerID, bench.ID, 100, 8, 20, date(2025, time.March, 3), nil, domain.Monday)
	require.NoError(t, err)
	_, err = f.service.CreatePlan(ctx, f.ownerID, squat.ID, 120, 5, 10, date(2025, time.March, 3), nil, domain.Thursday)
	require.NoError(t, err)

	details, err := f.service.GetMyPlans(ctx, f.ownerID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	require.NotNil(t, details[0].Exercise)
	assert.Equal(t, "Bench Press", details[0].Exercise.Name)
	assert.InDelta(t, 120.0, details[0].GoalWeight, 0.001)
	assert.Equal(t, "Squat", details[1].Exercise.Name)

	// Other users see nothing.
	other, err := f.service.GetMyPlans(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPlanService_DeletePlan_CascadesCompletions(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	exercise := f.addExercise(t, "Bench Press")

	plan, err := f.service.CreatePlan(ctx, f.ownerID, exercise.ID, 100, 8, 15, date(2025, time.March, 3), nil, domain.Wednesday)
	require.NoError(t, err)

	_, err = f.completionRepo.Create(ctx, &domain.CompletionLog{
		OwnerID:       f.ownerID,
		PlanID:        plan.ID,
		DateCompleted: date(2025, time.March, 5),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePlan(ctx, f.ownerID, plan.ID))

	plans, err := f.planRepo.GetByOwnerID(ctx, f.ownerID)
	require.NoError(t, err)
	assert.Empty(t, plans)

	logs, err := f.completionRepo.GetByOwnerID(ctx, f.ownerID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestPlanService_DeletePlan_ForeignPlan(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	exercise := f.addExercise(t, "Bench Press")

	plan, err := f.service.CreatePlan(ctx, f.ownerID, exercise.ID, 100, 8, 15, date(2025, time.March, 3), nil, domain.Wednesday)
	require.NoError(t, err)

	err = f.service.DeletePlan(ctx, primitive.NewObjectID(), plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// The plan is untouched.
	plans, err := f.planRepo.GetByOwnerID(ctx, f.ownerID)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}
