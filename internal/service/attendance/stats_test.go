package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
)

func TestAccumulate_StatusCounting(t *testing.T) {
	t.Parallel()

	stats := attendance.MonthlyStats{LeaveSummary: make(map[string]int)}

	records := []attendance.DailyRecord{
		{Status: attendance.StatusPresent, WorkedHours: 8.5, OvertimeHours: 0.5, ScheduledHours: 8, IsLate: true},
		{Status: attendance.StatusPresent, WorkedHours: 8, ScheduledHours: 8},
		{Status: attendance.StatusHalfDay, WorkedHours: 4.5, ScheduledHours: 8},
		{Status: attendance.StatusAbsent, ScheduledHours: 8},
		{Status: attendance.StatusLeave, LeaveType: "Sick Leave", ScheduledHours: 8},
		{Status: attendance.StatusLeave, ScheduledHours: 8},
		{Status: attendance.StatusHoliday},
	}
	for _, rec := range records {
		accumulate(&stats, rec)
	}

	// Only holidays stay out of the working-day denominator; leave days stay
	// in and keep their scheduled hours in the expected total.
	assert.Equal(t, 6, stats.TotalWorkingDays)
	assert.InDelta(t, 48.0, stats.TotalExpectedHours, 0.001)
	assert.Equal(t, 2.5, stats.TotalPresentDays)
	assert.Equal(t, 1.0, stats.TotalAbsentDays)
	assert.Equal(t, 1, stats.TotalHalfDays)
	assert.Equal(t, 1, stats.TotalLateDays)
	assert.Equal(t, 2, stats.TotalLeaveDays)
	assert.Equal(t, 1, stats.TotalHolidays)
	assert.Equal(t, 1, stats.LeaveSummary["Sick Leave"])
	assert.Equal(t, 1, stats.LeaveSummary["Unspecified"])
	assert.InDelta(t, 21.0, stats.TotalWorkedHours, 0.001)
	assert.InDelta(t, 0.5, stats.TotalOvertimeHours, 0.001)
}

func TestAccumulate_ExpectedHoursFollowPerDayShift(t *testing.T) {
	t.Parallel()

	stats := attendance.MonthlyStats{LeaveSummary: make(map[string]int)}

	// One present day and one leave day, both on a ten-hour shift.
	accumulate(&stats, attendance.DailyRecord{
		Status: attendance.StatusPresent, WorkedHours: 10, ScheduledHours: 10,
	})
	accumulate(&stats, attendance.DailyRecord{
		Status: attendance.StatusLeave, ScheduledHours: 10,
	})
	finalizeStats(&stats)

	assert.Equal(t, 2, stats.TotalWorkingDays)
	assert.InDelta(t, 20.0, stats.TotalExpectedHours, 0.001)
	assert.InDelta(t, 50.0, stats.AttendancePercentage, 0.001)
	assert.InDelta(t, -10.0, stats.HoursVariance, 0.001)
}

func TestFinalizeStats_Ratios(t *testing.T) {
	t.Parallel()

	stats := attendance.MonthlyStats{
		TotalWorkingDays:   20,
		TotalPresentDays:   18,
		TotalLateDays:      3,
		TotalWorkedHours:   150,
		TotalExpectedHours: 160,
	}
	finalizeStats(&stats)

	assert.InDelta(t, 160.0, stats.TotalExpectedHours, 0.001)
	assert.InDelta(t, -10.0, stats.HoursVariance, 0.001)
	assert.InDelta(t, 90.0, stats.AttendancePercentage, 0.001)
	assert.InDelta(t, 93.75, stats.HoursEfficiency, 0.001)
	assert.InDelta(t, 83.33, stats.PunctualityScore, 0.01)
}

func TestFinalizeStats_EmptyMonth(t *testing.T) {
	t.Parallel()

	stats := attendance.MonthlyStats{}
	finalizeStats(&stats)

	assert.Equal(t, 0.0, stats.TotalExpectedHours)
	assert.Equal(t, 0.0, stats.AttendancePercentage)
	assert.Equal(t, 0.0, stats.HoursEfficiency)
	assert.Equal(t, 100.0, stats.PunctualityScore)
}
