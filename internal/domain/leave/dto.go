package leave

import (
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	LeaveName string `json:"leave_name"`
	Count     int    `json:"count"`
	IsPaid    *bool  `json:"is_paid"`
}

func (r CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveName) {
		errs = append(errs, validator.ValidationError{Field: "leave_name", Message: "leave name is required"})
	}
	if r.Count < 0 {
		errs = append(errs, validator.ValidationError{Field: "count", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateLeaveTypeRequest) ToEntity(companyID string) LeaveType {
	lt := LeaveType{
		CompanyID: companyID,
		LeaveName: r.LeaveName,
		Count:     r.Count,
	}
	if r.IsPaid != nil {
		lt.IsPaid = *r.IsPaid
	}
	return lt
}

type LeaveTypeResponse struct {
	ID        string `json:"id"`
	LeaveName string `json:"leave_name"`
	Count     int    `json:"count"`
	IsPaid    bool   `json:"is_paid"`
}

func ToLeaveTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:        lt.ID,
		LeaveName: lt.LeaveName,
		Count:     lt.Count,
		IsPaid:    lt.IsPaid,
	}
}

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	FromDate    string `json:"from_date"` // "2006-01-02"
	ToDate      string `json:"to_date"`
	Reason      string `json:"reason"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}

	from, _ := time.Parse("2006-01-02", r.FromDate)
	to, _ := time.Parse("2006-01-02", r.ToDate)
	if to.Before(from) {
		return ErrInvalidDateRange
	}
	return nil
}

func (r CreateLeaveRequest) ToEntity(companyID, employeeID string) EmpLeave {
	from, _ := time.Parse("2006-01-02", r.FromDate)
	to, _ := time.Parse("2006-01-02", r.ToDate)
	typeID := r.LeaveTypeID

	return EmpLeave{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		LeaveTypeID: &typeID,
		Status:      StatusPending,
		Reason:      r.Reason,
		FromDate:    from,
		ToDate:      to,
	}
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateLeaveStatusRequest) Validate() error {
	switch LeaveStatus(r.Status) {
	case StatusApproved, StatusRejected, StatusCancelled:
		return nil
	}
	return validator.ValidationErrors{
		{Field: "status", Message: "must be Approved, Rejected or Cancelled"},
	}
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	FromDate      string `json:"from_date"`
	ToDate        string `json:"to_date"`
	Days          int    `json:"days"`
}

func ToLeaveResponse(l EmpLeave) LeaveResponse {
	return LeaveResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		LeaveTypeName: l.TypeName(),
		Status:        string(l.Status),
		Reason:        l.Reason,
		FromDate:      l.FromDate.Format("2006-01-02"),
		ToDate:        l.ToDate.Format("2006-01-02"),
		Days:          l.Days(),
	}
}
