package response

import (
	"errors"
	"net/http"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/company"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/user"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in record found for today", nil)
	case errors.Is(err, attendance.ErrOpenBreakExists):
		BadRequest(w, "Another break is still open", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift policy not found")
	case errors.Is(err, shift.ErrNoShiftConfigured):
		BadRequest(w, "No shift policy configured for company", nil)
	case errors.Is(err, shift.ErrWorkingDaysNotFound):
		NotFound(w, "Working days configuration not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoSalaryStructure):
		BadRequest(w, "No salary structure configured for company", nil)
	case errors.Is(err, payroll.ErrBatchAlreadyLocked):
		Conflict(w, "Payroll batch is already locked")
	case errors.Is(err, payroll.ErrDuplicateLockedBatch):
		Conflict(w, "A locked payroll batch already exists for this period")
	case errors.Is(err, payroll.ErrBatchNotOwned):
		Forbidden(w, "Payroll batch belongs to another company")
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "No active employees to run payroll for", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "from_date must not be after to_date", nil)

	// Company / calendar errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, holiday.ErrEventNotFound):
		NotFound(w, "Calendar event not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
