package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2025-03-03 is a Monday; walk the whole week.
	for i := 0; i < 7; i++ {
		d := time.Date(2025, time.March, 3+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, Weekday(i), WeekdayOf(d), d.Format("2006-01-02"))
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)

	// Names are matched exactly as the parsed plan text uses them.
	_, err = ParseWeekday("monday")
	assert.Error(t, err)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Weekday(7)", Weekday(7).String())
}

func TestWeekdayValid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(-1).Valid())
	assert.False(t, Weekday(7).Valid())
}
