package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/company"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/timeutil"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	breakRepo       attendance.BreakLogRepository
	employeeRepo    employee.EmployeeRepository
	shiftRepo       shift.ShiftPolicyRepository
	workingDaysRepo shift.WorkingDaysRepository
	holidayRepo     holiday.CalendarEventRepository
	leaveRepo       leave.EmpLeaveRepository
	companyRepo     company.CompanyRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakLogRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftPolicyRepository,
	workingDaysRepo shift.WorkingDaysRepository,
	holidayRepo holiday.CalendarEventRepository,
	leaveRepo leave.EmpLeaveRepository,
	companyRepo company.CompanyRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		breakRepo:       breakRepo,
		employeeRepo:    employeeRepo,
		shiftRepo:       shiftRepo,
		workingDaysRepo: workingDaysRepo,
		holidayRepo:     holidayRepo,
		leaveRepo:       leaveRepo,
		companyRepo:     companyRepo,
	}
}

// Helper to get company_id and employee_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, _ = claims["employee_id"].(string)

	return companyID, employeeID, nil
}

func (a *AttendanceServiceImpl) companyLocation(ctx context.Context, companyID string) *time.Location {
	comp, err := a.companyRepo.GetByID(ctx, companyID)
	if err != nil || comp.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(comp.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if employeeID == "" {
		return attendance.CheckInResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	loc := a.companyLocation(ctx, companyID)
	now := time.Now().In(loc)
	today := timeutil.Midnight(now, loc)

	policies, err := a.shiftRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to list shift policies: %w", err)
	}
	if len(policies) == 0 {
		return attendance.CheckInResponse{}, shift.ErrNoShiftConfigured
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	policy := SelectShift(policies, emp.ShiftID, now, loc)

	row, created, err := a.attendanceRepo.GetOrCreate(ctx, employeeID, companyID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get or create attendance: %w", err)
	}
	if !created && row.CheckIn != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now
	row.CheckIn = &checkIn
	row.ShiftID = &policy.ID
	row.IsPresent = true
	row.Remarks = nil

	if err := a.attendanceRepo.Update(ctx, row); err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to store check-in: %w", err)
	}

	deadline := policy.StartOn(today, loc).Add(policy.Grace())

	return attendance.CheckInResponse{
		AttendanceID: row.ID,
		Date:         timeutil.DateKey(today),
		CheckIn:      now.Format("15:04:05"),
		ShiftType:    policy.ShiftType,
		IsLate:       now.After(deadline),
	}, nil
}

// SelectShift picks the policy applying to a punch at now. A shift is a
// candidate when now falls inside [start-2h, end) and at least two hours of
// the shift remain; otherwise the shift with the nearest upcoming start wins.
func SelectShift(policies []shift.ShiftPolicy, preferred *string, now time.Time, loc *time.Location) *shift.ShiftPolicy {
	if preferred != nil {
		for i := range policies {
			if policies[i].ID == *preferred {
				return &policies[i]
			}
		}
	}

	today := timeutil.Midnight(now, loc)
	for i := range policies {
		start := policies[i].StartOn(today, loc)
		end := policies[i].EndOn(today, loc)
		if !now.Before(start.Add(-2*time.Hour)) && now.Before(end) && end.Sub(now) >= 2*time.Hour {
			return &policies[i]
		}
	}

	// Nearest upcoming start, rolling to tomorrow when every start has
	// passed.
	best := &policies[0]
	bestGap := time.Duration(math.MaxInt64)
	for i := range policies {
		start := policies[i].StartOn(today, loc)
		if start.Before(now) {
			start = start.AddDate(0, 0, 1)
		}
		if gap := start.Sub(now); gap < bestGap {
			bestGap = gap
			best = &policies[i]
		}
	}
	return best
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if employeeID == "" {
		return attendance.CheckOutResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	loc := a.companyLocation(ctx, companyID)
	now := time.Now().In(loc)
	today := timeutil.Midnight(now, loc)

	row, err := a.openSession(ctx, employeeID, companyID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	breaks, err := a.breakRepo.ListByAttendance(ctx, row.ID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to load breaks: %w", err)
	}
	for _, b := range breaks {
		if b.Start != nil && b.End == nil {
			return attendance.CheckOutResponse{}, attendance.ErrOpenBreakExists
		}
	}

	var breakTotal time.Duration
	for _, b := range breaks {
		breakTotal += b.Duration()
	}

	checkOut := now
	worked := checkOut.Sub(*row.CheckIn) - breakTotal
	if worked < 0 {
		worked = 0
	}

	var overtime time.Duration
	if row.ShiftID != nil {
		if policy, perr := a.shiftRepo.GetByID(ctx, *row.ShiftID, companyID); perr == nil {
			full := time.Duration(policy.FullDayHours() * float64(time.Hour))
			if worked > full {
				overtime = worked - full
			}
		}
	}

	row.CheckOut = &checkOut
	row.TotalWorkDuration = &worked
	row.TotalBreakTime = &breakTotal
	row.OvertimeDuration = &overtime

	if err := a.attendanceRepo.Update(ctx, *row); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to store check-out: %w", err)
	}

	return attendance.CheckOutResponse{
		AttendanceID:  row.ID,
		Date:          timeutil.DateKey(row.Date),
		CheckOut:      checkOut.Format("15:04:05"),
		WorkedHours:   round2(worked.Hours()),
		OvertimeHours: round2(overtime.Hours()),
	}, nil
}

// openSession finds the row the punch-out belongs to: today's open session,
// or yesterday's when an overnight shift crossed midnight.
func (a *AttendanceServiceImpl) openSession(ctx context.Context, employeeID, companyID string, today time.Time) (*attendance.Attendance, error) {
	row, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, companyID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if row != nil {
		if row.CheckIn == nil {
			return nil, attendance.ErrNotCheckedIn
		}
		if row.CheckOut != nil {
			return nil, attendance.ErrAlreadyCheckedOut
		}
		return row, nil
	}

	yesterday := today.AddDate(0, 0, -1)
	row, err = a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, companyID, yesterday)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if row != nil && row.CheckIn != nil && row.CheckOut == nil {
		return row, nil
	}
	return nil, attendance.ErrNotCheckedIn
}

// RecomputeWorkDuration implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecomputeWorkDuration(ctx context.Context, attendanceID string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	row, err := a.attendanceRepo.GetByID(ctx, attendanceID, companyID)
	if err != nil {
		return err
	}
	if row.CheckIn == nil || row.CheckOut == nil {
		return attendance.ErrNotCheckedIn
	}

	breaks, err := a.breakRepo.ListByAttendance(ctx, row.ID)
	if err != nil {
		return fmt.Errorf("failed to load breaks: %w", err)
	}

	var breakTotal time.Duration
	for _, b := range breaks {
		breakTotal += b.Duration()
	}

	worked := row.CheckOut.Sub(*row.CheckIn) - breakTotal
	if worked < 0 {
		worked = 0
	}

	var overtime time.Duration
	if row.ShiftID != nil {
		if policy, perr := a.shiftRepo.GetByID(ctx, *row.ShiftID, companyID); perr == nil {
			full := time.Duration(policy.FullDayHours() * float64(time.Hour))
			if worked > full {
				overtime = worked - full
			}
		}
	}

	row.TotalWorkDuration = &worked
	row.TotalBreakTime = &breakTotal
	row.OvertimeDuration = &overtime

	return a.attendanceRepo.Update(ctx, row)
}

// MonthlyLog implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyLog(ctx context.Context, month, year int) ([]attendance.MonthlyReport, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !validator.IsValidMonthYear(month, year) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "invalid month or year"}}
	}

	env, err := a.loadMonthEnv(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}

	reports := make([]attendance.MonthlyReport, 0, len(env.employees))
	for i := range env.employees {
		reports = append(reports, a.buildReport(env, &env.employees[i], month, year))
	}
	return reports, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, month, year int) (attendance.MonthlyReport, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}
	if employeeID == "" {
		return attendance.MonthlyReport{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	if !validator.IsValidMonthYear(month, year) {
		return attendance.MonthlyReport{}, validator.ValidationErrors{{Field: "month", Message: "invalid month or year"}}
	}

	env, err := a.loadMonthEnv(ctx, companyID, month, year)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}

	for i := range env.employees {
		if env.employees[i].ID == employeeID {
			return a.buildReport(env, &env.employees[i], month, year), nil
		}
	}
	return attendance.MonthlyReport{}, employee.ErrEmployeeNotFound
}

// monthEnv is everything the aggregator needs for one company-month, loaded
// in a handful of batch queries rather than per employee-day.
type monthEnv struct {
	loc          *time.Location
	first, last  time.Time
	employees    []employee.Employee
	rowsByEmp    map[string]map[string]attendance.Attendance
	breaksByRow  map[string][]attendance.BreakLog
	holidays     map[string]holiday.CalendarEvent
	leavesByEmp  map[string][]leave.EmpLeave
	shiftsByID   map[string]shift.ShiftPolicy
	defaultShift *shift.ShiftPolicy
	workdaysDept map[string]map[time.Weekday]bool
}

func (a *AttendanceServiceImpl) loadMonthEnv(ctx context.Context, companyID string, month, year int) (*monthEnv, error) {
	loc := a.companyLocation(ctx, companyID)
	first, last := timeutil.MonthBounds(month, year, loc)

	employees, err := a.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	rows, err := a.attendanceRepo.ListByCompanyPeriod(ctx, companyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	rowsByEmp := make(map[string]map[string]attendance.Attendance)
	rowIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		byDate, ok := rowsByEmp[row.EmployeeID]
		if !ok {
			byDate = make(map[string]attendance.Attendance)
			rowsByEmp[row.EmployeeID] = byDate
		}
		byDate[timeutil.DateKey(row.Date)] = row
		rowIDs = append(rowIDs, row.ID)
	}

	breaksByRow, err := a.breakRepo.ListByAttendanceIDs(ctx, rowIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load breaks: %w", err)
	}

	holidayEvents, err := a.holidayRepo.ListHolidays(ctx, companyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidays := make(map[string]holiday.CalendarEvent, len(holidayEvents))
	for _, ev := range holidayEvents {
		holidays[timeutil.DateKey(ev.Date)] = ev
	}

	leaves, err := a.leaveRepo.ListApprovedOverlapping(ctx, companyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaves: %w", err)
	}
	leavesByEmp := make(map[string][]leave.EmpLeave)
	for _, l := range leaves {
		leavesByEmp[l.EmployeeID] = append(leavesByEmp[l.EmployeeID], l)
	}

	policies, err := a.shiftRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift policies: %w", err)
	}
	shiftsByID := make(map[string]shift.ShiftPolicy, len(policies))
	for _, p := range policies {
		shiftsByID[p.ID] = p
	}
	var defaultShift *shift.ShiftPolicy
	if len(policies) > 0 {
		ids := make([]string, 0, len(policies))
		for _, p := range policies {
			ids = append(ids, p.ID)
		}
		sort.Strings(ids)
		p := shiftsByID[ids[0]]
		defaultShift = &p
	}

	workdaysDept := make(map[string]map[time.Weekday]bool)
	for _, emp := range employees {
		if emp.DepartmentID == nil {
			continue
		}
		if _, seen := workdaysDept[*emp.DepartmentID]; seen {
			continue
		}
		cfg, err := a.workingDaysRepo.GetByDepartment(ctx, *emp.DepartmentID, companyID)
		if err != nil || cfg == nil {
			continue
		}
		workdaysDept[*emp.DepartmentID] = cfg.WorkingWeekdays()
	}

	return &monthEnv{
		loc:          loc,
		first:        first,
		last:         last,
		employees:    employees,
		rowsByEmp:    rowsByEmp,
		breaksByRow:  breaksByRow,
		holidays:     holidays,
		leavesByEmp:  leavesByEmp,
		shiftsByID:   shiftsByID,
		defaultShift: defaultShift,
		workdaysDept: workdaysDept,
	}, nil
}

var defaultWorkweek = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
}

func (a *AttendanceServiceImpl) buildReport(env *monthEnv, emp *employee.Employee, month, year int) attendance.MonthlyReport {
	workweek := defaultWorkweek
	if emp.DepartmentID != nil {
		if set, ok := env.workdaysDept[*emp.DepartmentID]; ok {
			workweek = set
		}
	}

	report := attendance.MonthlyReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Month:        month,
		Year:         year,
	}
	stats := attendance.MonthlyStats{LeaveSummary: make(map[string]int)}

	for _, day := range timeutil.DatesBetween(env.first, env.last) {
		if !workweek[day.Weekday()] {
			continue
		}
		key := timeutil.DateKey(day)

		var row *attendance.Attendance
		var breaks []attendance.BreakLog
		if byDate, ok := env.rowsByEmp[emp.ID]; ok {
			if r, ok := byDate[key]; ok {
				row = &r
				breaks = env.breaksByRow[r.ID]
			}
		}

		var dayHoliday *holiday.CalendarEvent
		if ev, ok := env.holidays[key]; ok {
			dayHoliday = &ev
		}

		var dayLeave *leave.EmpLeave
		for i := range env.leavesByEmp[emp.ID] {
			if env.leavesByEmp[emp.ID][i].Covers(day) {
				dayLeave = &env.leavesByEmp[emp.ID][i]
				break
			}
		}

		rec := BuildDailyRecord(BuildInput{
			Date:    day,
			Loc:     env.loc,
			Shift:   a.resolveShift(env, emp, row),
			Row:     row,
			Breaks:  breaks,
			Holiday: dayHoliday,
			Leave:   dayLeave,
		})
		report.Daily = append(report.Daily, rec)
		accumulate(&stats, rec)
	}

	finalizeStats(&stats)
	report.Stats = stats
	return report
}

func (a *AttendanceServiceImpl) resolveShift(env *monthEnv, emp *employee.Employee, row *attendance.Attendance) *shift.ShiftPolicy {
	if row != nil && row.ShiftID != nil {
		if p, ok := env.shiftsByID[*row.ShiftID]; ok {
			return &p
		}
	}
	if emp.ShiftID != nil {
		if p, ok := env.shiftsByID[*emp.ShiftID]; ok {
			return &p
		}
	}
	return env.defaultShift
}

func accumulate(stats *attendance.MonthlyStats, rec attendance.DailyRecord) {
	stats.TotalWorkedHours += rec.WorkedHours
	stats.TotalOvertimeHours += rec.OvertimeHours
	stats.TotalBreakTimeHours += rec.BreakTimeHours

	if rec.Status == attendance.StatusHoliday {
		stats.TotalHolidays++
		return
	}

	// Every non-holiday day counts as a working day, leave included, and
	// contributes its own shift's scheduled hours to the expected total.
	stats.TotalWorkingDays++
	stats.TotalExpectedHours += rec.ScheduledHours

	switch rec.Status {
	case attendance.StatusLeave:
		stats.TotalLeaveDays++
		name := rec.LeaveType
		if name == "" {
			name = "Unspecified"
		}
		stats.LeaveSummary[name]++
	case attendance.StatusPresent:
		stats.TotalPresentDays++
	case attendance.StatusHalfDay:
		stats.TotalPresentDays += 0.5
		stats.TotalHalfDays++
	case attendance.StatusAbsent:
		stats.TotalAbsentDays++
	}

	if rec.Status != attendance.StatusLeave && rec.IsLate {
		stats.TotalLateDays++
	}
}

// finalizeStats derives the ratio fields. Every ratio resolves to zero when
// its denominator is zero except the punctuality score, which is 100 for an
// employee with no present days.
func finalizeStats(stats *attendance.MonthlyStats) {
	stats.TotalExpectedHours = round2(stats.TotalExpectedHours)
	stats.TotalWorkedHours = round2(stats.TotalWorkedHours)
	stats.TotalOvertimeHours = round2(stats.TotalOvertimeHours)
	stats.TotalBreakTimeHours = round2(stats.TotalBreakTimeHours)
	stats.HoursVariance = round2(stats.TotalWorkedHours - stats.TotalExpectedHours)

	if stats.TotalWorkingDays > 0 {
		stats.AttendancePercentage = round2(stats.TotalPresentDays / float64(stats.TotalWorkingDays) * 100)
	}
	if stats.TotalExpectedHours > 0 {
		stats.HoursEfficiency = round2(stats.TotalWorkedHours / stats.TotalExpectedHours * 100)
	}
	if stats.TotalPresentDays > 0 {
		onTime := stats.TotalPresentDays - float64(stats.TotalLateDays)
		if onTime < 0 {
			onTime = 0
		}
		stats.PunctualityScore = round2(onTime / stats.TotalPresentDays * 100)
	} else {
		stats.PunctualityScore = 100
	}
}
