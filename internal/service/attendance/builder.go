package attendance

import (
	"math"
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/timeutil"
)

// BuildInput is everything needed to classify one employee-day. Row is nil
// for days with no punch record; Holiday and Leave are nil when neither
// applies. Holiday wins over Leave, which wins over the punch classification.
type BuildInput struct {
	Date    time.Time
	Loc     *time.Location
	Shift   *shift.ShiftPolicy
	Row     *attendance.Attendance
	Breaks  []attendance.BreakLog
	Holiday *holiday.CalendarEvent
	Leave   *leave.EmpLeave
}

// BuildDailyRecord classifies a single day. Worked time is elapsed punch time
// minus closed breaks, floored at zero; thresholds come from the shift
// policy. Lateness is measured against the shift start on the check-in's own
// calendar day plus grace, early departure against the shift end with the
// overnight roll applied.
func BuildDailyRecord(in BuildInput) attendance.DailyRecord {
	rec := attendance.DailyRecord{
		Date:    timeutil.DateKey(in.Date),
		DayName: in.Date.Weekday().String(),
		Status:  attendance.StatusAbsent,
	}

	if in.Shift != nil {
		rec.ShiftType = in.Shift.ShiftType
		rec.ScheduledHours = round2(in.Shift.FullDayHours())
	}
	if in.Row != nil && in.Row.Remarks != nil {
		rec.Remarks = *in.Row.Remarks
	}

	worked, breakTotal := workedTime(in.Row, in.Breaks)
	rec.WorkedHours = round2(worked.Hours())
	rec.BreakTimeHours = round2(breakTotal.Hours())

	if in.Row != nil && in.Row.CheckIn != nil {
		rec.CheckIn = formatPunch(in.Row.CheckIn, in.Loc)
		rec.CheckOut = formatPunch(in.Row.CheckOut, in.Loc)

		if in.Shift != nil {
			punchDay := in.Row.CheckIn.In(in.Loc)
			start := in.Shift.StartOn(punchDay, in.Loc)
			deadline := start.Add(in.Shift.Grace())
			if in.Row.CheckIn.After(deadline) {
				rec.IsLate = true
				rec.LateByMinutes = int(in.Row.CheckIn.Sub(deadline).Minutes())
			}

			if in.Row.CheckOut != nil {
				end := in.Shift.EndOn(punchDay, in.Loc)
				if in.Row.CheckOut.Before(end) {
					rec.EarlyDeparture = true
					rec.EarlyDepartureMinutes = int(end.Sub(*in.Row.CheckOut).Minutes())
				}
				overtime := worked - time.Duration(in.Shift.FullDayHours()*float64(time.Hour))
				if overtime > 0 {
					rec.OvertimeHours = round2(overtime.Hours())
				}
			}
		}
	}

	switch {
	case in.Holiday != nil:
		rec.Status = attendance.StatusHoliday
		rec.IsHoliday = true
		rec.HolidayName = in.Holiday.Name
	case in.Leave != nil:
		rec.Status = attendance.StatusLeave
		rec.LeaveType = in.Leave.TypeName()
	case in.Row != nil && in.Row.LeaveID != nil:
		// A row stamped with a leave reference is a leave day even when the
		// approved overlay did not resolve it, and regardless of punches.
		rec.Status = attendance.StatusLeave
	case in.Row != nil && in.Row.CheckIn != nil && in.Shift != nil:
		switch {
		case rec.WorkedHours >= in.Shift.FullDayHours():
			rec.Status = attendance.StatusPresent
		case rec.WorkedHours >= in.Shift.HalfDayHours():
			rec.Status = attendance.StatusHalfDay
			rec.HalfDay = true
		}
	}

	return rec
}

// workedTime prefers the stored duration columns when present, falling back
// to a fresh computation from the punches and closed breaks.
func workedTime(row *attendance.Attendance, breaks []attendance.BreakLog) (worked, breakTotal time.Duration) {
	if row == nil {
		return 0, 0
	}
	for _, b := range breaks {
		breakTotal += b.Duration()
	}
	if row.TotalBreakTime != nil {
		breakTotal = *row.TotalBreakTime
	}
	if row.TotalWorkDuration != nil {
		return *row.TotalWorkDuration, breakTotal
	}
	if row.CheckIn == nil || row.CheckOut == nil {
		return 0, breakTotal
	}
	worked = row.CheckOut.Sub(*row.CheckIn) - breakTotal
	if worked < 0 {
		worked = 0
	}
	return worked, breakTotal
}

func formatPunch(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04:05")
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
