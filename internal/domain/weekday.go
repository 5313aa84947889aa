package domain

import (
	"fmt"
	"time"
)

// Weekday is the single day-of-week a plan recurs on, Monday=0 through
// Sunday=6. This matches the ordering the scheduling UI and the stored
// plans use, which differs from time.Weekday (Sunday=0).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is within the Monday..Sunday range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday maps a day name ("Monday", "Tuesday", ...) to a Weekday.
// Used when mapping parsed workout-plan text onto calendar dates.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %q", name)
}

// WeekdayOf converts a calendar date to its Weekday (Monday=0).
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
