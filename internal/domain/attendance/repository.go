package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. Every method
// takes companyID to prevent cross-company access.
type AttendanceRepository interface {
	// GetOrCreate atomically fetches or inserts the row for
	// (employee, date, company). The bool result is true when a new row was
	// inserted. Backed by the unique key on (employee_id, date, company_id)
	// so two concurrent check-ins resolve to the same row.
	GetOrCreate(ctx context.Context, employeeID string, companyID string, date time.Time) (Attendance, bool, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, companyID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, att Attendance) error

	// ListByCompanyPeriod returns rows with date in [from,to] for all employees.
	ListByCompanyPeriod(ctx context.Context, companyID string, from, to time.Time) ([]Attendance, error)

	// CountDistinctDates counts distinct attendance dates for one employee in
	// [from,to]; multiple rows on one date count once.
	CountDistinctDates(ctx context.Context, employeeID string, companyID string, from, to time.Time) (int, error)

	// ListOpenSessions returns rows with a check-in but no check-out older
	// than the given cutoff. Used by the auto-close job.
	ListOpenSessions(ctx context.Context, cutoff time.Time) ([]Attendance, error)

	BulkCreateAbsences(ctx context.Context, rows []Attendance) error
}

// BreakLogRepository gives read access to break intervals. Break toggling
// itself is owned by an external collaborator; this engine only consumes
// closed intervals.
type BreakLogRepository interface {
	ListByAttendance(ctx context.Context, attendanceID string) ([]BreakLog, error)

	// ListByAttendanceIDs batches break lookup for monthly aggregation,
	// keyed by attendance id.
	ListByAttendanceIDs(ctx context.Context, attendanceIDs []string) (map[string][]BreakLog, error)
}
