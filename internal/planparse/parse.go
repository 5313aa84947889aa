// Package planparse turns free-text AI workout plans into structured
// entries. The input format is loose by nature, so parsing is best-effort:
// lines that don't match the expected shape fall back to a name-only entry
// instead of failing the whole plan.
package planparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed exercise line.
type Entry struct {
	Name string
	Sets int
	Reps int
}

// DayPlan groups the exercise entries under one day heading, in the order
// the headings appeared in the text.
type DayPlan struct {
	Day     string
	Entries []Entry
}

// Expected line shape: "2. Bench Press: 4 sets of 6 reps;"
var exerciseLineRe = regexp.MustCompile(`(?i)^\d+\.\s*(.+?):\s*(\d+)\s*sets\s*of\s*(\d+)\s*reps`)

// Fallback: numbered line without the sets/reps tail, e.g. "3. Plank"
var fallbackLineRe = regexp.MustCompile(`^\d+\.\s*(.+)`)

// Parse splits a raw plan into per-day exercise entries, one DayPlan per
// heading in the order they appeared. Day headings are lines
// ending in a colon; numbered lines under a heading are exercises. A
// heading need not be a weekday name; the import step decides what to do
// with headings it cannot map. Lines before any heading are ignored.
// Unparseable exercise lines degrade to {Name: <line text>, Sets: 0, Reps: 0}.
func Parse(raw string) []DayPlan {
	var days []DayPlan

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") && !exerciseLineRe.MatchString(line) {
			days = append(days, DayPlan{Day: strings.TrimSuffix(line, ":"), Entries: []Entry{}})
			continue
		}

		if len(days) == 0 {
			continue
		}
		current := &days[len(days)-1]

		if m := exerciseLineRe.FindStringSubmatch(line); m != nil {
			sets, _ := strconv.Atoi(m[2])
			reps, _ := strconv.Atoi(m[3])
			current.Entries = append(current.Entries, Entry{
				Name: strings.TrimSpace(m[1]),
				Sets: sets,
				Reps: reps,
			})
			continue
		}

		name := line
		if m := fallbackLineRe.FindStringSubmatch(line); m != nil {
			name = strings.TrimSpace(m[1])
		}
		current.Entries = append(current.Entries, Entry{Name: name})
	}

	return days
}
