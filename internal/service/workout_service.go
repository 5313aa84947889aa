package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/ai"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/planparse"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrEmptyPlan        = errors.New("workout plan text is empty")
	ErrGenerationFailed = errors.New("failed to generate workout plan")
)

// Prompt sent to the AI collaborator. The numbered-list shape here is what
// planparse expects back when the plan is saved to the calendar.
const workoutPromptTemplate = `Create a one-week workout plan for the following person.

%s

Format the plan with one section per day. Each section starts with the day
name followed by a colon (e.g. "Monday:"), and lists exercises as numbered
lines like "1. Bench Press: 4 sets of 6 reps".`

// ImportSummary reports what a plan import actually saved.
type ImportSummary struct {
	SavedDays   []string             `json:"savedDays"`
	PlanIDs     []primitive.ObjectID `json:"planIds"`
	SkippedDays []string             `json:"skippedDays,omitempty"`
}

type WorkoutService interface {
	// GeneratePlan asks the AI collaborator for a workout plan, seeding
	// the prompt with the user's profile context and free-form input.
	GeneratePlan(ctx context.Context, ownerID primitive.ObjectID, userInput string) (string, error)

	// SaveToCalendar parses a generated plan and creates one single-day
	// WorkoutPlan per exercise within the week starting at weekStart.
	// Days that don't map to a weekday name are skipped, not fatal.
	SaveToCalendar(ctx context.Context, ownerID primitive.ObjectID, rawPlan string, weekStart time.Time) (*ImportSummary, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	planRepo     repository.PlanRepository
	generator    ai.Generator
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	planRepo repository.PlanRepository,
	generator ai.Generator,
) WorkoutService {
	return &workoutService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		planRepo:     planRepo,
		generator:    generator,
	}
}

// GeneratePlan builds the prompt from profile context + user input and
// returns the raw AI plan text.
func (s *workoutService) GeneratePlan(ctx context.Context, ownerID primitive.ObjectID, userInput string) (string, error) {
	var info strings.Builder
	info.WriteString(strings.TrimSpace(userInput))

	// Profile context is optional enrichment; a missing user record only
	// means we generate from the free-form input alone.
	if user, err := s.userRepo.GetByID(ctx, ownerID); err == nil {
		if user.FitnessLevel != "" {
			fmt.Fprintf(&info, "\nFitness level: %s", user.FitnessLevel)
		}
		if len(user.Goals) > 0 {
			fmt.Fprintf(&info, "\nGoals: %s", strings.Join(user.Goals, ", "))
		}
		if len(user.Injuries) > 0 {
			fmt.Fprintf(&info, "\nInjury history: %s", strings.Join(user.Injuries, ", "))
		}
	}

	prompt := fmt.Sprintf(workoutPromptTemplate, info.String())

	plan, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Errorf("AI plan generation failed: %v", err)
		return "", ErrGenerationFailed
	}
	return strings.TrimSpace(plan), nil
}

// SaveToCalendar maps each parsed day to its date within the target week
// and creates the corresponding single-day plans.
func (s *workoutService) SaveToCalendar(ctx context.Context, ownerID primitive.ObjectID, rawPlan string, weekStart time.Time) (*ImportSummary, error) {
	rawPlan = strings.TrimSpace(rawPlan)
	if rawPlan == "" {
		return nil, ErrEmptyPlan
	}

	// Map weekday names to concrete dates in [weekStart, weekStart+6].
	dayToDate := make(map[string]time.Time, 7)
	for i := 0; i < 7; i++ {
		d := calendar.DateOf(weekStart.AddDate(0, 0, i))
		dayToDate[domain.WeekdayOf(d).String()] = d
	}

	summary := &ImportSummary{}
	for _, dayPlan := range planparse.Parse(rawPlan) {
		day := dayPlan.Day
		date, ok := dayToDate[day]
		if !ok {
			log.Warnf("Skipping unknown day in imported plan: %q", day)
			summary.SkippedDays = append(summary.SkippedDays, day)
			continue
		}

		for _, entry := range dayPlan.Entries {
			exercise, err := s.getOrCreateExercise(ctx, entry.Name, day)
			if err != nil {
				return nil, err
			}

			endDate := date
			plan := &domain.WorkoutPlan{
				OwnerID:      ownerID,
				ExerciseID:   exercise.ID,
				Reps:         entry.Reps,
				StartDate:    date,
				EndDate:      &endDate,
				RecurringDay: domain.WeekdayOf(date),
			}
			planID, err := s.planRepo.Create(ctx, plan)
			if err != nil {
				return nil, err
			}
			summary.PlanIDs = append(summary.PlanIDs, planID)
		}
		summary.SavedDays = append(summary.SavedDays, day)
	}

	return summary, nil
}

// getOrCreateExercise reuses an existing definition by name or creates a
// fresh one with a uniquified slug.
func (s *workoutService) getOrCreateExercise(ctx context.Context, name, day string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByName(ctx, name)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	created := &domain.Exercise{
		Name:        name,
		Slug:        slugify(fmt.Sprintf("%s-%s", name, uuid.NewString()[:4])),
		Description: fmt.Sprintf("AI-generated workout for %s", day),
	}
	id, err := s.exerciseRepo.Create(ctx, created)
	if err != nil {
		// A concurrent import may have created the same name first.
		if errors.Is(err, repository.ErrDuplicate) {
			return s.exerciseRepo.GetByName(ctx, name)
		}
		return nil, err
	}
	created.ID = id
	return created, nil
}

// slugify lowercases and collapses non-alphanumerics into hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
