package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/company"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/timeutil"
)

// AttendanceJobs sweeps attendance data on schedule: synthesizing absence
// rows for employees who never punched, and closing sessions left open past
// their shift end.
type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	breakRepo       attendance.BreakLogRepository
	employeeRepo    employee.EmployeeRepository
	shiftRepo       shift.ShiftPolicyRepository
	workingDaysRepo shift.WorkingDaysRepository
	holidayRepo     holiday.CalendarEventRepository
	leaveRepo       leave.EmpLeaveRepository
	companyRepo     company.CompanyRepository
	db              *database.DB
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakLogRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftPolicyRepository,
	workingDaysRepo shift.WorkingDaysRepository,
	holidayRepo holiday.CalendarEventRepository,
	leaveRepo leave.EmpLeaveRepository,
	companyRepo company.CompanyRepository,
	db *database.DB,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		breakRepo:       breakRepo,
		employeeRepo:    employeeRepo,
		shiftRepo:       shiftRepo,
		workingDaysRepo: workingDaysRepo,
		holidayRepo:     holidayRepo,
		leaveRepo:       leaveRepo,
		companyRepo:     companyRepo,
		db:              db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// AutoCloseStaleSessions closes sessions that are still open well past their
// shift end. The checkout is stamped at the scheduled shift end, not at sweep
// time, so the synthesized duration matches the schedule.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale sessions job")

	cutoff := time.Now().Add(-2 * time.Hour)
	sessions, err := j.attendanceRepo.ListOpenSessions(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	if len(sessions) == 0 {
		slog.Info("Cron: No stale sessions found")
		return nil
	}

	closedCount := 0
	for _, session := range sessions {
		loc := j.companyLocation(ctx, session.CompanyID)

		policy, err := j.sessionShift(ctx, session)
		if err != nil {
			slog.Error("Cron: No shift for stale session",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		scheduledOut := policy.EndOn(session.Date, loc)
		if !scheduledOut.After(*session.CheckIn) {
			// Punch-in after scheduled end, close at the punch itself.
			scheduledOut = *session.CheckIn
		}
		if scheduledOut.After(cutoff) {
			// Shift has not been over long enough yet.
			continue
		}

		breaks, err := j.breakRepo.ListByAttendance(ctx, session.ID)
		if err != nil {
			slog.Error("Cron: Failed to load breaks", "attendance_id", session.ID, "error", err)
			continue
		}

		var breakTotal time.Duration
		for _, b := range breaks {
			breakTotal += b.Duration()
		}

		worked := scheduledOut.Sub(*session.CheckIn) - breakTotal
		if worked < 0 {
			worked = 0
		}

		checkOut := scheduledOut
		session.CheckOut = &checkOut
		session.TotalWorkDuration = &worked
		session.TotalBreakTime = &breakTotal
		remarks := "Auto-closed: no check-out recorded within 2 hours of shift end"
		session.Remarks = &remarks

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-close session",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-closed stale sessions", "count", closedCount)
	return nil
}

// MarkAbsentEmployees inserts absence rows for yesterday for every active
// employee who has no attendance row, no approved leave, and for whom
// yesterday was a working day.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees
		WHERE employment_status = 'active' AND deleted_at IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}

	totalAbsent := 0

	for _, companyID := range companyIDs {
		loc := j.companyLocation(ctx, companyID)
		yesterday := timeutil.Midnight(time.Now().In(loc).AddDate(0, 0, -1), loc)

		holidays, err := j.holidayRepo.ListHolidays(ctx, companyID, yesterday, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to load holidays", "company_id", companyID, "error", err)
			continue
		}
		if len(holidays) > 0 {
			continue
		}

		employees, err := j.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to get employees", "company_id", companyID, "error", err)
			continue
		}

		var absences []attendance.Attendance

		for _, emp := range employees {
			if !j.isWorkingDay(ctx, &emp, companyID, yesterday) {
				continue
			}

			existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, companyID, yesterday)
			if err != nil {
				continue
			}
			if existing != nil {
				continue
			}

			leaves, err := j.leaveRepo.ListApprovedForEmployee(ctx, emp.ID, companyID, yesterday, yesterday)
			if err != nil || len(leaves) > 0 {
				continue
			}

			remarks := "Auto-marked absent"
			absences = append(absences, attendance.Attendance{
				EmployeeID: emp.ID,
				CompanyID:  companyID,
				ShiftID:    emp.ShiftID,
				Date:       yesterday,
				IsPresent:  false,
				Remarks:    &remarks,
			})
		}

		if len(absences) == 0 {
			continue
		}
		if err := j.attendanceRepo.BulkCreateAbsences(ctx, absences); err != nil {
			slog.Error("Cron: Failed to bulk create absences", "company_id", companyID, "error", err)
			continue
		}
		totalAbsent += len(absences)
	}

	slog.Info("Cron: Marked absent employees", "count", totalAbsent)
	return nil
}

func (j *AttendanceJobs) companyLocation(ctx context.Context, companyID string) *time.Location {
	comp, err := j.companyRepo.GetByID(ctx, companyID)
	if err != nil || comp.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(comp.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (j *AttendanceJobs) sessionShift(ctx context.Context, session attendance.Attendance) (*shift.ShiftPolicy, error) {
	if session.ShiftID != nil {
		policy, err := j.shiftRepo.GetByID(ctx, *session.ShiftID, session.CompanyID)
		if err == nil {
			return &policy, nil
		}
	}
	return j.shiftRepo.GetDefault(ctx, session.CompanyID)
}

func (j *AttendanceJobs) isWorkingDay(ctx context.Context, emp *employee.Employee, companyID string, day time.Time) bool {
	if emp.DepartmentID == nil {
		return day.Weekday() != time.Saturday && day.Weekday() != time.Sunday
	}
	cfg, err := j.workingDaysRepo.GetByDepartment(ctx, *emp.DepartmentID, companyID)
	if err != nil || cfg == nil {
		return day.Weekday() != time.Saturday && day.Weekday() != time.Sunday
	}
	return cfg.WorkingWeekdays()[day.Weekday()]
}
