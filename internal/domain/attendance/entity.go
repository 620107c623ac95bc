package attendance

import "time"

// Attendance is one employee-day punch record. Uniqueness on
// (employee_id, date, company_id) is enforced by the repository's
// get-or-create so concurrent check-ins cannot produce duplicates.
type Attendance struct {
	ID                string
	EmployeeID        string
	CompanyID         string
	ShiftID           *string
	Date              time.Time
	CheckIn           *time.Time
	CheckOut          *time.Time
	TotalWorkDuration *time.Duration
	TotalBreakTime    *time.Duration
	OvertimeDuration  *time.Duration
	IsPresent         bool
	LeaveID           *string
	Remarks           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// BreakLog is one break interval inside an attendance session. Only closed
// intervals (both Start and End set) are subtracted from worked time; an open
// break contributes zero.
type BreakLog struct {
	ID              string
	EmployeeID      string
	AttendanceID    string
	BreakConfigID   *string
	Start           *time.Time
	End             *time.Time
	DurationMinutes *int
	CreatedAt       time.Time
}

// Closed reports whether the break has both endpoints.
func (b *BreakLog) Closed() bool {
	return b.Start != nil && b.End != nil
}

// Duration returns the break length, zero for open breaks.
func (b *BreakLog) Duration() time.Duration {
	if !b.Closed() {
		return 0
	}
	return b.End.Sub(*b.Start)
}
