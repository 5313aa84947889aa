package calendar

import (
	"sort"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event colors for the calendar frontend. Green when completed, blue when
// still scheduled.
const (
	ColorCompleted = "#28A745"
	ColorScheduled = "#007BFF"
)

// Event is one concrete occurrence of a plan on a calendar date, annotated
// with its completion state. Derived on every read, never persisted.
type Event struct {
	PlanID    primitive.ObjectID `json:"id"`
	Title     string             `json:"title"`
	GifURL    string             `json:"gifUrl,omitempty"`
	Date      time.Time          `json:"start"`
	Color     string             `json:"color"`
	Completed bool               `json:"completed"`
}

// CompletionKey identifies one completed occurrence.
type CompletionKey struct {
	PlanID primitive.ObjectID
	Date   time.Time
}

// CompletionSet builds the (plan, date) membership set from a user's
// completion rows. One set lookup per occurrence beats one storage query
// per occurrence; an open-ended plan alone can expand to dozens.
func CompletionSet(logs []domain.CompletionLog) map[CompletionKey]struct{} {
	set := make(map[CompletionKey]struct{}, len(logs))
	for _, l := range logs {
		set[CompletionKey{PlanID: l.PlanID, Date: DateOf(l.DateCompleted)}] = struct{}{}
	}
	return set
}

// Overlay expands every plan up to horizon and marks each occurrence
// against the completion set. Events come back grouped by date with the
// groups in ascending date order; within one date, plans keep their input
// order. The titles map supplies the exercise name and gif for each plan's
// exercise; plans without an entry get an empty title rather than an error.
func Overlay(
	plans []domain.WorkoutPlan,
	exercises map[primitive.ObjectID]domain.Exercise,
	completed map[CompletionKey]struct{},
	horizon time.Time,
) []Event {
	eventsByDate := make(map[time.Time][]Event)

	for i := range plans {
		plan := &plans[i]
		exercise := exercises[plan.ExerciseID]

		for _, date := range ExpandPlan(plan, horizon) {
			_, done := completed[CompletionKey{PlanID: plan.ID, Date: date}]
			color := ColorScheduled
			if done {
				color = ColorCompleted
			}
			eventsByDate[date] = append(eventsByDate[date], Event{
				PlanID:    plan.ID,
				Title:     exercise.Name,
				GifURL:    exercise.GifURL,
				Date:      date,
				Color:     color,
				Completed: done,
			})
		}
	}

	dates := make([]time.Time, 0, len(eventsByDate))
	for date := range eventsByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var events []Event
	for _, date := range dates {
		events = append(events, eventsByDate[date]...)
	}
	return events
}
