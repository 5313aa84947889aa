package service

import (
	"context"
	"errors"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/warmup"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("workout plan not found")
)

// ToggleResult echoes the state of an occurrence after a toggle, for
// client-side confirmation.
type ToggleResult struct {
	PlanID    primitive.ObjectID `json:"id"`
	Date      time.Time          `json:"date"`
	Completed bool               `json:"completed"`
}

// CalendarPage is the full calendar read: the user's occurrences plus a
// few decorative warm-up suggestions.
type CalendarPage struct {
	Events  []calendar.Event  `json:"events"`
	WarmUps []warmup.Exercise `json:"warmUps"`
}

// CompletedWorkout is one row of the completed-workouts listing.
type CompletedWorkout struct {
	Title         string    `json:"title"`
	DateCompleted time.Time `json:"dateCompleted"`
}

type CalendarService interface {
	// Events expands all of the user's plans up to horizon and overlays
	// completion state. Read-only and recomputed on every call.
	Events(ctx context.Context, ownerID primitive.ObjectID, horizon time.Time) ([]calendar.Event, error)

	// Calendar is Events plus best-effort warm-up suggestions.
	Calendar(ctx context.Context, ownerID primitive.ObjectID, horizon time.Time) (*CalendarPage, error)

	// Toggle marks or unmarks one occurrence as completed. Idempotent in
	// both directions.
	Toggle(ctx context.Context, ownerID, planID primitive.ObjectID, date time.Time, completed bool) (*ToggleResult, error)

	// Completed lists the user's completion log, newest first.
	Completed(ctx context.Context, ownerID primitive.ObjectID) ([]CompletedWorkout, error)
}

// calendarService implements the CalendarService interface.
type calendarService struct {
	planRepo       repository.PlanRepository
	completionRepo repository.CompletionRepository
	exerciseRepo   repository.ExerciseRepository
	warmUps        warmup.Provider
}

// NewCalendarService creates a new instance of calendarService.
func NewCalendarService(
	planRepo repository.PlanRepository,
	completionRepo repository.CompletionRepository,
	exerciseRepo repository.ExerciseRepository,
	warmUps warmup.Provider,
) CalendarService {
	return &calendarService{
		planRepo:       planRepo,
		completionRepo: completionRepo,
		exerciseRepo:   exerciseRepo,
		warmUps:        warmUps,
	}
}

// Events performs the expansion + completion overlay for one user.
func (s *calendarService) Events(ctx context.Context, ownerID primitive.ObjectID, horizon time.Time) ([]calendar.Event, error) {
	plans, err := s.planRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	logs, err := s.completionRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exercisesForPlans(ctx, plans)
	if err != nil {
		return nil, err
	}

	return calendar.Overlay(plans, exercises, calendar.CompletionSet(logs), horizon), nil
}

// Calendar returns the events feed plus warm-up suggestions. The warm-up
// fetch is isolated: its error is logged and swallowed, and the page comes
// back with an empty list instead.
func (s *calendarService) Calendar(ctx context.Context, ownerID primitive.ObjectID, horizon time.Time) (*CalendarPage, error) {
	events, err := s.Events(ctx, ownerID, horizon)
	if err != nil {
		return nil, err
	}

	warmUps := []warmup.Exercise{}
	if s.warmUps != nil {
		fetched, err := s.warmUps.WarmUps(ctx)
		if err != nil {
			log.Warnf("Failed to fetch warm-up exercises: %v", err)
		} else if fetched != nil {
			warmUps = fetched
		}
	}

	return &CalendarPage{Events: events, WarmUps: warmUps}, nil
}

// Toggle marks (completed=true) or unmarks (completed=false) the plan's
// occurrence on date. The plan must belong to ownerID; a plan owned by
// someone else surfaces as ErrPlanNotFound.
func (s *calendarService) Toggle(ctx context.Context, ownerID, planID primitive.ObjectID, date time.Time, completed bool) (*ToggleResult, error) {
	if _, err := s.planRepo.GetByIDAndOwner(ctx, planID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	day := calendar.DateOf(date)

	if completed {
		_, err := s.completionRepo.Create(ctx, &domain.CompletionLog{
			OwnerID:       ownerID,
			PlanID:        planID,
			DateCompleted: day,
		})
		// Already marked: the unique index rejected the second row, which
		// is exactly the state we wanted.
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
	} else {
		if _, err := s.completionRepo.DeleteByOccurrence(ctx, ownerID, planID, day); err != nil {
			return nil, err
		}
	}

	return &ToggleResult{PlanID: planID, Date: day, Completed: completed}, nil
}

// Completed lists the user's completed occurrences with exercise names.
func (s *calendarService) Completed(ctx context.Context, ownerID primitive.ObjectID) ([]CompletedWorkout, error) {
	logs, err := s.completionRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	plans, err := s.planRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exercisesForPlans(ctx, plans)
	if err != nil {
		return nil, err
	}
	titleByPlan := make(map[primitive.ObjectID]string, len(plans))
	for _, p := range plans {
		titleByPlan[p.ID] = exercises[p.ExerciseID].Name
	}

	results := make([]CompletedWorkout, 0, len(logs))
	for _, l := range logs {
		results = append(results, CompletedWorkout{
			Title:         titleByPlan[l.PlanID],
			DateCompleted: l.DateCompleted,
		})
	}
	return results, nil
}

// exercisesForPlans fetches the exercise definitions the plans reference,
// keyed by ID, in one query.
func (s *calendarService) exercisesForPlans(ctx context.Context, plans []domain.WorkoutPlan) (map[primitive.ObjectID]domain.Exercise, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(plans))
	ids := make([]primitive.ObjectID, 0, len(plans))
	for _, p := range plans {
		if _, ok := seen[p.ExerciseID]; ok {
			continue
		}
		seen[p.ExerciseID] = struct{}{}
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
	return byID, nil
}
