package leave

import "context"

// LeaveService covers the minimal leave surface the attendance and payroll
// engines depend on: leave types and the approval state of requests.
type LeaveService interface {
	CreateType(ctx context.Context, req *CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// Submit files a Pending request for the calling employee.
	Submit(ctx context.Context, req *CreateLeaveRequest) (LeaveResponse, error)

	// UpdateStatus moves a request to Approved, Rejected or Cancelled.
	// Only Approved requests feed attendance and payroll.
	UpdateStatus(ctx context.Context, id string, req *UpdateLeaveStatusRequest) (LeaveResponse, error)
}
