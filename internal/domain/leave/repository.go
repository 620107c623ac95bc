package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveType, error)
	ListByCompany(ctx context.Context, companyID string) ([]LeaveType, error)
}

// EmpLeaveRepository gives access to leave requests. Period queries are
// inclusive on both ends.
type EmpLeaveRepository interface {
	Create(ctx context.Context, req EmpLeave) (EmpLeave, error)
	GetByID(ctx context.Context, id string, companyID string) (EmpLeave, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status LeaveStatus) error

	// ListApprovedOverlapping returns Approved requests whose [from,to] range
	// overlaps the given period for any employee of the company.
	ListApprovedOverlapping(ctx context.Context, companyID string, from, to time.Time) ([]EmpLeave, error)

	// ListApprovedForEmployee is the single-employee variant.
	ListApprovedForEmployee(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]EmpLeave, error)

	// CountApprovedWithin counts Approved requests for one employee whose
	// entire [from,to] range lies inside the period, split by paid flag.
	// The count is per record, not per day.
	CountApprovedWithin(ctx context.Context, employeeID string, companyID string, from, to time.Time, paid bool) (int, error)
}
