package shift

import (
	"strings"
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/timeutil"
)

// ShiftPolicy defines a work shift for a company. CheckIn and CheckOut carry
// only the time-of-day; a CheckIn later than CheckOut means the shift runs
// overnight and the checkout rolls to the next calendar day.
type ShiftPolicy struct {
	ID          string
	CompanyID   string
	ShiftType   string
	CheckIn     time.Time
	CheckOut    time.Time
	GracePeriod *time.Duration
	HalfDay     *time.Duration
	FullDay     *time.Duration
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullDayHours returns the configured full-day threshold in decimal hours,
// defaulting to 8.0 when unset.
func (s *ShiftPolicy) FullDayHours() float64 {
	if s.FullDay == nil {
		return 8.0
	}
	return s.FullDay.Hours()
}

// HalfDayHours returns the configured half-day threshold in decimal hours,
// defaulting to 4.0 when unset.
func (s *ShiftPolicy) HalfDayHours() float64 {
	if s.HalfDay == nil {
		return 4.0
	}
	return s.HalfDay.Hours()
}

// Grace returns the grace period, defaulting to zero when unset.
func (s *ShiftPolicy) Grace() time.Duration {
	if s.GracePeriod == nil {
		return 0
	}
	return *s.GracePeriod
}

// IsOvernight reports whether the shift crosses midnight.
func (s *ShiftPolicy) IsOvernight() bool {
	in := s.CheckIn.Hour()*3600 + s.CheckIn.Minute()*60 + s.CheckIn.Second()
	out := s.CheckOut.Hour()*3600 + s.CheckOut.Minute()*60 + s.CheckOut.Second()
	return in > out
}

// StartOn anchors the shift start to the given calendar date in loc.
func (s *ShiftPolicy) StartOn(date time.Time, loc *time.Location) time.Time {
	return timeutil.CombineDateTime(date, s.CheckIn, loc)
}

// EndOn anchors the shift end to the given calendar date in loc, rolling
// forward one day for overnight shifts.
func (s *ShiftPolicy) EndOn(date time.Time, loc *time.Location) time.Time {
	end := timeutil.CombineDateTime(date, s.CheckOut, loc)
	if s.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// DepartmentWorkingDays configures which weekdays count as working days for a
// department. The range is cyclic: a week start of "saturday" with an end of
// "wednesday" wraps around the weekend.
type DepartmentWorkingDays struct {
	ID               string
	CompanyID        string
	DepartmentID     string
	WeekStartDay     string
	WeekEndDay       string
	WorkingDaysCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase day name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(name)]
	return d, ok
}

// WorkingWeekdays expands the configured start..end range into a membership
// set, wrapping across the week boundary. An unparseable configuration falls
// back to Monday through Friday.
func (w *DepartmentWorkingDays) WorkingWeekdays() map[time.Weekday]bool {
	start, okStart := ParseWeekday(w.WeekStartDay)
	end, okEnd := ParseWeekday(w.WeekEndDay)
	if !okStart || !okEnd {
		start, end = time.Monday, time.Friday
	}
	return timeutil.WeekdaySet(start, end)
}
