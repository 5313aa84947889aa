package service

import (
	"context"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/warmup"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// contracts, including the unique-index behavior the toggle logic relies
// on, so service tests run against the same error surface.

// fakeUserRepo stores copies, like real persistence: mutating a returned
// user must not change the stored record.
type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = *user
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]*domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	for _, ex := range r.exercises {
		if ex.Name == exercise.Name {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	exercise.ID = id
	r.exercises[id] = exercise
	return id, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	ex, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return ex, nil
}

func (r *fakeExerciseRepo) GetByName(_ context.Context, name string) (*domain.Exercise, error) {
	for _, ex := range r.exercises {
		if ex.Name == name {
			return ex, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, id := range ids {
		if ex, ok := r.exercises[id]; ok {
			out = append(out, *ex)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, ex := range r.exercises {
		out = append(out, *ex)
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = exercise
	return nil
}

type fakePlanRepo struct {
	plans []*domain.WorkoutPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now().UTC()
	r.plans = append(r.plans, plan)
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByIDAndOwner(_ context.Context, id, ownerID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	for _, p := range r.plans {
		if p.ID == id && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	var out []domain.WorkoutPlan
	for _, p := range r.plans { // insertion order, like the createdAt sort
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id, ownerID primitive.ObjectID) error {
	for i, p := range r.plans {
		if p.ID == id && p.OwnerID == ownerID {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type occurrenceKey struct {
	ownerID primitive.ObjectID
	planID  primitive.ObjectID
	date    time.Time
}

type fakeCompletionRepo struct {
	logs  []*domain.CompletionLog
	index map[occurrenceKey]struct{}
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{index: make(map[occurrenceKey]struct{})}
}

func (r *fakeCompletionRepo) Create(_ context.Context, log *domain.CompletionLog) (primitive.ObjectID, error) {
	key := occurrenceKey{log.OwnerID, log.PlanID, calendar.DateOf(log.DateCompleted)}
	if _, exists := r.index[key]; exists {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()
	r.index[key] = struct{}{}
	r.logs = append(r.logs, log)
	return log.ID, nil
}

func (r *fakeCompletionRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]domain.CompletionLog, error) {
	var out []domain.CompletionLog
	for _, l := range r.logs {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeCompletionRepo) DeleteByOccurrence(_ context.Context, ownerID, planID primitive.ObjectID, date time.Time) (int64, error) {
	key := occurrenceKey{ownerID, planID, calendar.DateOf(date)}
	var kept []*domain.CompletionLog
	var deleted int64
	for _, l := range r.logs {
		if l.OwnerID == ownerID && l.PlanID == planID && calendar.DateOf(l.DateCompleted).Equal(key.date) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.logs = kept
	delete(r.index, key)
	return deleted, nil
}

func (r *fakeCompletionRepo) DeleteByPlanID(_ context.Context, planID primitive.ObjectID) error {
	var kept []*domain.CompletionLog
	for _, l := range r.logs {
		if l.PlanID == planID {
			delete(r.index, occurrenceKey{l.OwnerID, l.PlanID, calendar.DateOf(l.DateCompleted)})
			continue
		}
		kept = append(kept, l)
	}
	r.logs = kept
	return nil
}

type fakeWarmUpProvider struct {
	exercises []warmup.Exercise
	err       error
}

func (p *fakeWarmUpProvider) WarmUps(_ context.Context) ([]warmup.Exercise, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.exercises, nil
}

type fakeGenerator struct {
	plan string
	err  error

	lastPrompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.plan, nil
}
