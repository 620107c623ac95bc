package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
)

func dayShift(t *testing.T) *shift.ShiftPolicy {
	t.Helper()
	checkIn, err := time.Parse("15:04:05", "09:00:00")
	require.NoError(t, err)
	checkOut, err := time.Parse("15:04:05", "17:00:00")
	require.NoError(t, err)
	grace := 15 * time.Minute
	return &shift.ShiftPolicy{
		ID:          "shift-day",
		ShiftType:   "Day",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GracePeriod: &grace,
	}
}

func nightShift(t *testing.T) *shift.ShiftPolicy {
	t.Helper()
	checkIn, err := time.Parse("15:04:05", "22:00:00")
	require.NoError(t, err)
	checkOut, err := time.Parse("15:04:05", "06:00:00")
	require.NoError(t, err)
	return &shift.ShiftPolicy{
		ID:        "shift-night",
		ShiftType: "Night",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}
}

func punchRow(date time.Time, in, out string, loc *time.Location) *attendance.Attendance {
	row := &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		Date:       date,
		IsPresent:  true,
	}
	if in != "" {
		t, _ := time.ParseInLocation("2006-01-02 15:04:05", date.Format("2006-01-02")+" "+in, loc)
		row.CheckIn = &t
	}
	if out != "" {
		t, _ := time.ParseInLocation("2006-01-02 15:04:05", date.Format("2006-01-02")+" "+out, loc)
		if row.CheckIn != nil && t.Before(*row.CheckIn) {
			t = t.AddDate(0, 0, 1)
		}
		row.CheckOut = &t
	}
	return row
}

func TestBuildDailyRecord_FullDayLatePunch(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:20:00", "17:25:00", loc),
	})

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.IsLate)
	assert.Equal(t, 5, rec.LateByMinutes)
	assert.InDelta(t, 8.08, rec.WorkedHours, 0.01)
	assert.InDelta(t, 0.08, rec.OvertimeHours, 0.01)
	assert.False(t, rec.EarlyDeparture)
}

func TestBuildDailyRecord_WithinGraceNotLate(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:10:00", "17:30:00", loc),
	})

	assert.False(t, rec.IsLate)
	assert.Equal(t, 0, rec.LateByMinutes)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestBuildDailyRecord_HalfDay(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:00:00", "13:30:00", loc),
	})

	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
	assert.True(t, rec.HalfDay)
	assert.True(t, rec.EarlyDeparture)
	assert.InDelta(t, 4.5, rec.WorkedHours, 0.01)
}

func TestBuildDailyRecord_BelowHalfDayIsAbsent(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, loc)

	// 09:00 to 12:55 is 3.92 hours, under the half-day threshold.
	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:00:00", "12:55:00", loc),
	})

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.InDelta(t, 3.92, rec.WorkedHours, 0.01)
}

func TestBuildDailyRecord_BreaksSubtracted(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, loc)
	row := punchRow(date, "09:00:00", "18:00:00", loc)

	start := row.CheckIn.Add(4 * time.Hour)
	end := start.Add(1 * time.Hour)
	openStart := row.CheckIn.Add(6 * time.Hour)

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   row,
		Breaks: []attendance.BreakLog{
			{AttendanceID: row.ID, Start: &start, End: &end},
			// Open break contributes zero.
			{AttendanceID: row.ID, Start: &openStart},
		},
	})

	assert.InDelta(t, 8.0, rec.WorkedHours, 0.01)
	assert.InDelta(t, 1.0, rec.BreakTimeHours, 0.01)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestBuildDailyRecord_OvernightShift(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 6, 0, 0, 0, 0, loc)

	// 23:50 to 07:10 next day is 7.33 hours.
	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: nightShift(t),
		Row:   punchRow(date, "23:50:00", "07:10:00", loc),
	})

	assert.InDelta(t, 7.33, rec.WorkedHours, 0.01)
	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
	assert.True(t, rec.IsLate)
	assert.False(t, rec.EarlyDeparture)
}

func TestBuildDailyRecord_HolidayWinsOverLeaveAndPunch(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	name := "Casual"

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:00:00", "17:00:00", loc),
		Holiday: &holiday.CalendarEvent{
			Name: "Founders Day", Date: date, IsHoliday: true,
		},
		Leave: &leave.EmpLeave{
			EmployeeID: "emp-1", Status: leave.StatusApproved,
			FromDate: date, ToDate: date, LeaveTypeName: &name,
		},
	})

	assert.Equal(t, attendance.StatusHoliday, rec.Status)
	assert.Equal(t, "Founders Day", rec.HolidayName)
	assert.Empty(t, rec.LeaveType)
}

func TestBuildDailyRecord_LeaveWinsOverPunch(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	name := "Sick"

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   punchRow(date, "09:00:00", "11:00:00", loc),
		Leave: &leave.EmpLeave{
			EmployeeID: "emp-1", Status: leave.StatusApproved,
			FromDate: date, ToDate: date, LeaveTypeName: &name,
		},
	})

	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.Equal(t, "Sick", rec.LeaveType)
}

func TestBuildDailyRecord_RowLeaveReferenceWinsOverPunch(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, loc)

	// The row carries a leave reference but no resolved leave overlay, for
	// example when the request was approved after the month's overlay window
	// was loaded. Full-day punches must not reclassify it.
	leaveID := "lv-1"
	row := punchRow(date, "09:00:00", "17:00:00", loc)
	row.LeaveID = &leaveID

	rec := BuildDailyRecord(BuildInput{
		Date:  date,
		Loc:   loc,
		Shift: dayShift(t),
		Row:   row,
	})

	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.Empty(t, rec.LeaveType)
}

func TestBuildDailyRecord_NoRowIsAbsent(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, loc)

	rec := BuildDailyRecord(BuildInput{Date: date, Loc: loc, Shift: dayShift(t)})

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.CheckIn)
	assert.Zero(t, rec.WorkedHours)
}

func TestSelectShift_ActiveWindow(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	day := *dayShift(t)
	night := *nightShift(t)
	policies := []shift.ShiftPolicy{day, night}

	// 08:30 falls in the day shift window [07:00, 17:00).
	now := time.Date(2026, 3, 2, 8, 30, 0, 0, loc)
	picked := SelectShift(policies, nil, now, loc)
	assert.Equal(t, "shift-day", picked.ID)

	// 23:30 falls in the night shift window [20:00, 06:00 next day).
	now = time.Date(2026, 3, 2, 23, 30, 0, 0, loc)
	picked = SelectShift(policies, nil, now, loc)
	assert.Equal(t, "shift-night", picked.ID)
}

func TestSelectShift_TooLateFallsToUpcoming(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	day := *dayShift(t)
	night := *nightShift(t)
	policies := []shift.ShiftPolicy{day, night}

	// 16:30 leaves under two hours of the day shift; the night shift at
	// 22:00 is the nearest upcoming start.
	now := time.Date(2026, 3, 2, 16, 30, 0, 0, loc)
	picked := SelectShift(policies, nil, now, loc)
	assert.Equal(t, "shift-night", picked.ID)
}

func TestSelectShift_PreferredWins(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	day := *dayShift(t)
	night := *nightShift(t)
	policies := []shift.ShiftPolicy{day, night}
	preferred := "shift-night"

	now := time.Date(2026, 3, 2, 8, 30, 0, 0, loc)
	picked := SelectShift(policies, &preferred, now, loc)
	assert.Equal(t, "shift-night", picked.ID)
}
