// Package calendar turns recurring workout plans into dated occurrences
// and overlays logged completions onto them. Everything here is a pure
// computation over its inputs: no storage access, no retained state, safe
// to recompute on every request.
package calendar

import (
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
)

// DateOf normalizes a timestamp to its calendar date (UTC midnight).
// All occurrence and completion dates in the system use this form.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Expand returns the ordered dates on which a plan has an occurrence.
//
// The recurrence window is [start, end] inclusive; a nil end means the plan
// is open-ended and horizon bounds the expansion instead. The first
// occurrence is the earliest date >= start whose weekday matches day, and
// subsequent occurrences follow at a weekly stride. An inverted window
// yields an empty slice, not an error. A single-day plan (start == end,
// matching weekday) yields exactly that one date.
func Expand(start time.Time, end *time.Time, day domain.Weekday, horizon time.Time) []time.Time {
	startDate := DateOf(start)
	effectiveEnd := DateOf(horizon)
	if end != nil {
		effectiveEnd = DateOf(*end)
	}
	if startDate.After(effectiveEnd) {
		return nil
	}

	current := startDate
	if domain.WeekdayOf(current) != day {
		daysAhead := (int(day) - int(domain.WeekdayOf(current)) + 7) % 7
		current = current.AddDate(0, 0, daysAhead)
	}

	var dates []time.Time
	for !current.After(effectiveEnd) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 7)
	}
	return dates
}

// ExpandPlan is Expand applied to a stored plan.
func ExpandPlan(plan *domain.WorkoutPlan, horizon time.Time) []time.Time {
	return Expand(plan.StartDate, plan.EndDate, plan.RecurringDay, horizon)
}
