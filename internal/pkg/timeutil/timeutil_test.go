package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	first, last := MonthBounds(2, 2024, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	first, last = MonthBounds(12, 2025, time.UTC)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestMonthBounds_CompanyLocation(t *testing.T) {
	t.Parallel()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	first, last := MonthBounds(3, 2026, jakarta)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, jakarta), first)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, jakarta), last)

	// Midnight in Jakarta is the previous calendar day in UTC; the window
	// must stay anchored to the location it was asked for.
	assert.Equal(t, time.Date(2026, 2, 28, 17, 0, 0, 0, time.UTC), first.UTC())
}

func TestWeekdaySet_Wraparound(t *testing.T) {
	t.Parallel()

	set := WeekdaySet(time.Friday, time.Monday)
	assert.Equal(t, map[time.Weekday]bool{
		time.Friday:   true,
		time.Saturday: true,
		time.Sunday:   true,
		time.Monday:   true,
	}, set)
}

func TestWeekdaySet_SingleDay(t *testing.T) {
	t.Parallel()

	set := WeekdaySet(time.Wednesday, time.Wednesday)
	assert.Equal(t, map[time.Weekday]bool{time.Wednesday: true}, set)
}

func TestDatesBetween(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)

	days := DatesBetween(from, to)
	assert.Len(t, days, 4)
	assert.Equal(t, "2025-08-30", DateKey(days[0]))
	assert.Equal(t, "2025-09-02", DateKey(days[3]))

	assert.Empty(t, DatesBetween(to, from))
}

func TestCombineDateTime(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 22, 30, 0, 0, time.UTC)

	combined := CombineDateTime(date, clock, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC), combined)
}
