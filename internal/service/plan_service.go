package service

import (
	"context"
	"errors"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrPlanValidation   = errors.New("workout plan validation failed")
)

// PlanDetails combines a plan with its exercise definition for listings.
type PlanDetails struct {
	domain.WorkoutPlan
	Exercise   *domain.Exercise `json:"exercise"`
	GoalWeight float64          `json:"goalWeight"`
}

type PlanService interface {
	CreatePlan(ctx context.Context, ownerID, exerciseID primitive.ObjectID, weight float64, reps, percentIncrease int, startDate time.Time, endDate *time.Time, recurringDay domain.Weekday) (*domain.WorkoutPlan, error)
	GetMyPlans(ctx context.Context, ownerID primitive.ObjectID) ([]PlanDetails, error)
	DeletePlan(ctx context.Context, ownerID, planID primitive.ObjectID) error
}

// planService implements the PlanService interface.
type planService struct {
	planRepo       repository.PlanRepository
	exerciseRepo   repository.ExerciseRepository
	completionRepo repository.CompletionRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	planRepo repository.PlanRepository,
	exerciseRepo repository.ExerciseRepository,
	completionRepo repository.CompletionRepository,
) PlanService {
	return &planService{
		planRepo:       planRepo,
		exerciseRepo:   exerciseRepo,
		completionRepo: completionRepo,
	}
}

// CreatePlan validates and persists a new recurring workout plan.
func (s *planService) CreatePlan(ctx context.Context, ownerID, exerciseID primitive.ObjectID, weight float64, reps, percentIncrease int, startDate time.Time, endDate *time.Time, recurringDay domain.Weekday) (*domain.WorkoutPlan, error) {
	if ownerID == primitive.NilObjectID || exerciseID == primitive.NilObjectID {
		return nil, errors.New("owner ID and exercise ID are required")
	}

	// The exercise must exist; plans never reference dangling definitions.
	if _, err := s.exerciseRepo.GetByID(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	var end *time.Time
	if endDate != nil {
		e := calendar.DateOf(*endDate)
		end = &e
	}

	plan := &domain.WorkoutPlan{
		OwnerID:         ownerID,
		ExerciseID:      exerciseID,
		CurrentWeight:   weight,
		Reps:            reps,
		PercentIncrease: percentIncrease,
		StartDate:       calendar.DateOf(startDate),
		EndDate:         end,
		RecurringDay:    recurringDay,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// GetMyPlans lists the user's plans with their exercise details.
func (s *planService) GetMyPlans(ctx context.Context, ownerID primitive.ObjectID) ([]PlanDetails, error) {
	plans, err := s.planRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ExerciseID)
	}
	exercises, err := s.exerciseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}

	details := make([]PlanDetails, 0, len(plans))
	for _, p := range plans {
		d := PlanDetails{WorkoutPlan: p, GoalWeight: p.GoalWeight()}
		if ex, ok := byID[p.ExerciseID]; ok {
			exCopy := ex
			d.Exercise = &exCopy
		}
		details = append(details, d)
	}
	return details, nil
}

// DeletePlan removes a plan and cascades the delete to its completion
// rows so no orphaned completions remain.
func (s *planService) DeletePlan(ctx context.Context, ownerID, planID primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, planID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}

	return s.completionRepo.DeleteByPlanID(ctx, planID)
}
