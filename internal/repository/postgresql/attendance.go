package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.shift_id, a.date,
	a.check_in, a.check_out, a.total_work_seconds, a.total_break_seconds,
	a.overtime_seconds, a.is_present, a.leave_id, a.remarks,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var workSec, breakSec, overtimeSec *int64

	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.ShiftID, &a.Date,
		&a.CheckIn, &a.CheckOut, &workSec, &breakSec,
		&overtimeSec, &a.IsPresent, &a.LeaveID, &a.Remarks,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	secs := func(v *int64) *time.Duration {
		if v == nil {
			return nil
		}
		d := time.Duration(*v) * time.Second
		return &d
	}
	a.TotalWorkDuration = secs(workSec)
	a.TotalBreakTime = secs(breakSec)
	a.OvertimeDuration = secs(overtimeSec)

	return a, nil
}

// GetOrCreate implements attendance.AttendanceRepository. The insert relies
// on the unique key (employee_id, date, company_id); a conflicting insert
// falls through to reading the winner's row.
func (r *attendanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, companyID string, date time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendances AS a (employee_id, company_id, date)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date, company_id) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, insert, employeeID, companyID, date))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, false, err
	}

	existing, err := r.GetByEmployeeAndDate(ctx, employeeID, companyID, date)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	if existing == nil {
		return attendance.Attendance{}, false, attendance.ErrAttendanceNotFound
	}
	return *existing, false, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1 AND a.company_id = $2
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, companyID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.company_id = $2 AND a.date = $3
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET shift_id = $1, check_in = $2, check_out = $3,
			total_work_seconds = $4, total_break_seconds = $5, overtime_seconds = $6,
			is_present = $7, leave_id = $8, remarks = $9, updated_at = NOW()
		WHERE id = $10 AND company_id = $11
	`

	tag, err := q.Exec(ctx, query,
		att.ShiftID, att.CheckIn, att.CheckOut,
		durationSeconds(att.TotalWorkDuration),
		durationSeconds(att.TotalBreakTime),
		durationSeconds(att.OvertimeDuration),
		att.IsPresent, att.LeaveID, att.Remarks,
		att.ID, att.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByCompanyPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompanyPeriod(ctx context.Context, companyID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.company_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.employee_id, a.date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountDistinctDates implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountDistinctDates(ctx context.Context, employeeID string, companyID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendances
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, companyID, from, to).Scan(&count)
	return count, err
}

// ListOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListOpenSessions(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.check_in IS NOT NULL AND a.check_out IS NULL AND a.check_in < $1
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// BulkCreateAbsences implements attendance.AttendanceRepository. Conflicting
// rows are skipped so a sweep re-run never clobbers a real punch.
func (r *attendanceRepositoryImpl) BulkCreateAbsences(ctx context.Context, rows []attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, company_id, shift_id, date, is_present, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date, company_id) DO NOTHING
	`

	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}

		if _, err := q.Exec(ctx, query,
			row.ID, row.EmployeeID, row.CompanyID, row.ShiftID, row.Date, row.IsPresent, row.Remarks,
		); err != nil {
			return err
		}
	}
	return nil
}

type breakLogRepositoryImpl struct {
	db *database.DB
}

func NewBreakLogRepository(db *database.DB) attendance.BreakLogRepository {
	return &breakLogRepositoryImpl{db: db}
}

const breakLogColumns = `
	id, employee_id, attendance_id, break_config_id,
	break_start, break_end, duration_minutes, created_at
`

func scanBreakLog(row pgx.Row) (attendance.BreakLog, error) {
	var b attendance.BreakLog
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.AttendanceID, &b.BreakConfigID,
		&b.Start, &b.End, &b.DurationMinutes, &b.CreatedAt,
	)
	return b, err
}

// ListByAttendance implements attendance.BreakLogRepository.
func (r *breakLogRepositoryImpl) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakLogColumns + `
		FROM break_logs
		WHERE attendance_id = $1
		ORDER BY break_start
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []attendance.BreakLog
	for rows.Next() {
		b, err := scanBreakLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListByAttendanceIDs implements attendance.BreakLogRepository.
func (r *breakLogRepositoryImpl) ListByAttendanceIDs(ctx context.Context, attendanceIDs []string) (map[string][]attendance.BreakLog, error) {
	out := make(map[string][]attendance.BreakLog)
	if len(attendanceIDs) == 0 {
		return out, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakLogColumns + `
		FROM break_logs
		WHERE attendance_id = ANY($1)
		ORDER BY break_start
	`

	rows, err := q.Query(ctx, query, attendanceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBreakLog(rows)
		if err != nil {
			return nil, err
		}
		out[b.AttendanceID] = append(out[b.AttendanceID], b)
	}
	return out, rows.Err()
}
