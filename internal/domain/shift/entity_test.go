package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}

func TestShiftPolicy_Defaults(t *testing.T) {
	t.Parallel()

	s := &ShiftPolicy{CheckIn: clock(9, 0), CheckOut: clock(18, 0)}

	assert.Equal(t, 8.0, s.FullDayHours())
	assert.Equal(t, 4.0, s.HalfDayHours())
	assert.Equal(t, time.Duration(0), s.Grace())

	full := 9 * time.Hour
	half := 5 * time.Hour
	grace := 15 * time.Minute
	s.FullDay = &full
	s.HalfDay = &half
	s.GracePeriod = &grace

	assert.Equal(t, 9.0, s.FullDayHours())
	assert.Equal(t, 5.0, s.HalfDayHours())
	assert.Equal(t, 15*time.Minute, s.Grace())
}

func TestShiftPolicy_StartEndOn(t *testing.T) {
	t.Parallel()

	s := &ShiftPolicy{CheckIn: clock(9, 0), CheckOut: clock(18, 0)}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.IsOvernight())
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), s.StartOn(day, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), s.EndOn(day, time.UTC))
}

func TestShiftPolicy_OvernightEndRollsForward(t *testing.T) {
	t.Parallel()

	s := &ShiftPolicy{CheckIn: clock(22, 0), CheckOut: clock(6, 0)}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.IsOvernight())
	assert.Equal(t, time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC), s.StartOn(day, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), s.EndOn(day, time.UTC))
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	d, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, d)

	_, ok = ParseWeekday("someday")
	assert.False(t, ok)
}

func TestWorkingWeekdays_Wraparound(t *testing.T) {
	t.Parallel()

	w := &DepartmentWorkingDays{WeekStartDay: "saturday", WeekEndDay: "wednesday"}
	set := w.WorkingWeekdays()

	assert.True(t, set[time.Saturday])
	assert.True(t, set[time.Sunday])
	assert.True(t, set[time.Wednesday])
	assert.False(t, set[time.Thursday])
	assert.False(t, set[time.Friday])
}

func TestWorkingWeekdays_BadConfigFallsBack(t *testing.T) {
	t.Parallel()

	w := &DepartmentWorkingDays{WeekStartDay: "??", WeekEndDay: "friday"}
	set := w.WorkingWeekdays()

	assert.True(t, set[time.Monday])
	assert.True(t, set[time.Friday])
	assert.False(t, set[time.Saturday])
	assert.False(t, set[time.Sunday])
}
