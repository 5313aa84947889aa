package planparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullPlan(t *testing.T) {
	raw := `Here is your weekly plan:

Monday:
1. Bench Press: 4 sets of 6 reps
2. Incline Dumbbell Press: 3 sets of 10 reps

Wednesday:
1. Squat: 5 sets of 5 reps

Friday:
1. Deadlift: 3 sets of 5 reps
2. Plank
`
	got := Parse(raw)
	require.Len(t, got, 4)

	// The preamble ends in a colon, so it parses as a heading with no
	// entries. The import step is what filters out non-weekday headings.
	assert.Equal(t, "Here is your weekly plan", got[0].Day)
	assert.Empty(t, got[0].Entries)

	assert.Equal(t, "Monday", got[1].Day)
	assert.Equal(t, []Entry{
		{Name: "Bench Press", Sets: 4, Reps: 6},
		{Name: "Incline Dumbbell Press", Sets: 3, Reps: 10},
	}, got[1].Entries)

	assert.Equal(t, "Wednesday", got[2].Day)
	assert.Equal(t, []Entry{{Name: "Squat", Sets: 5, Reps: 5}}, got[2].Entries)

	// A numbered line without the sets/reps tail keeps the name only.
	assert.Equal(t, "Friday", got[3].Day)
	assert.Equal(t, []Entry{
		{Name: "Deadlift", Sets: 3, Reps: 5},
		{Name: "Plank"},
	}, got[3].Entries)
}

func TestParse_PreservesHeadingOrder(t *testing.T) {
	raw := `Friday:
1. Deadlift: 3 sets of 5 reps

Monday:
1. Bench Press: 4 sets of 6 reps

Wednesday:
1. Squat: 5 sets of 5 reps
`
	got := Parse(raw)
	require.Len(t, got, 3)
	assert.Equal(t, "Friday", got[0].Day)
	assert.Equal(t, "Monday", got[1].Day)
	assert.Equal(t, "Wednesday", got[2].Day)
}

func TestParse_LinesBeforeAnyHeading(t *testing.T) {
	raw := `1. Bench Press: 4 sets of 6 reps
Some intro text
Tuesday:
1. Squat: 3 sets of 8 reps`

	got := Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Tuesday", got[0].Day)
	assert.Equal(t, []Entry{{Name: "Squat", Sets: 3, Reps: 8}}, got[0].Entries)
}

func TestParse_CaseInsensitiveSetsReps(t *testing.T) {
	raw := `Thursday:
1. Overhead Press: 3 SETS OF 8 REPS`

	got := Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, []Entry{{Name: "Overhead Press", Sets: 3, Reps: 8}}, got[0].Entries)
}

func TestParse_UnnumberedLineFallsBack(t *testing.T) {
	raw := `Saturday:
Light jog for 20 minutes`

	got := Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, []Entry{{Name: "Light jog for 20 minutes"}}, got[0].Entries)
}

func TestParse_DayWithNoExercises(t *testing.T) {
	got := Parse("Sunday:")
	require.Len(t, got, 1)
	assert.Equal(t, "Sunday", got[0].Day)
	assert.Empty(t, got[0].Entries)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("no headings here at all"))
}
