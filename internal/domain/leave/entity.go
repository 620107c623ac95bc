package leave

import "time"

// LeaveType is a company-level leave policy. IsPaid decides whether approved
// days count toward days paid or loss-of-pay in payroll.
type LeaveType struct {
	ID        string
	CompanyID string
	LeaveName string
	Count     int // annual entitlement in days
	IsPaid    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveStatus string

const (
	StatusPending   LeaveStatus = "Pending"
	StatusApproved  LeaveStatus = "Approved"
	StatusRejected  LeaveStatus = "Rejected"
	StatusCancelled LeaveStatus = "Cancelled"
)

// EmpLeave is a single leave request. Only Approved records participate in
// attendance aggregation and payroll.
type EmpLeave struct {
	ID                 string
	CompanyID          string
	EmployeeID         string
	ReportingManagerID *string
	LeaveTypeID        *string
	Status             LeaveStatus
	Reason             string
	FromDate           time.Time
	ToDate             time.Time
	CreatedAt          time.Time

	// Joined fields
	LeaveTypeName *string
	LeaveTypePaid *bool
}

// Days returns the inclusive day count of the request.
func (l *EmpLeave) Days() int {
	return int(l.ToDate.Sub(l.FromDate).Hours()/24) + 1
}

// Covers reports whether the given calendar date falls inside the request.
func (l *EmpLeave) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(l.FromDate.Year(), l.FromDate.Month(), l.FromDate.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(l.ToDate.Year(), l.ToDate.Month(), l.ToDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(from) && !d.After(to)
}

// TypeName returns the joined leave-type name or an empty string.
func (l *EmpLeave) TypeName() string {
	if l.LeaveTypeName == nil {
		return ""
	}
	return *l.LeaveTypeName
}

// IsPaid reports whether the joined leave type is paid. Requests whose leave
// type was deleted resolve to unpaid.
func (l *EmpLeave) IsPaid() bool {
	return l.LeaveTypePaid != nil && *l.LeaveTypePaid
}
