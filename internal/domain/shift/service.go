package shift

import (
	"context"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
)

// ShiftService manages the company's shift policies and department working-day
// configuration. The company comes from the JWT claims in ctx.
type ShiftService interface {
	CreatePolicy(ctx context.Context, req *CreateShiftPolicyRequest) (ShiftPolicyResponse, error)
	GetPolicy(ctx context.Context, id string) (ShiftPolicyResponse, error)
	ListPolicies(ctx context.Context) ([]ShiftPolicyResponse, error)
	UpdatePolicy(ctx context.Context, id string, req *CreateShiftPolicyRequest) (ShiftPolicyResponse, error)
	DeletePolicy(ctx context.Context, id string) error

	GetWorkingDays(ctx context.Context, departmentID string) (WorkingDaysResponse, error)
	UpsertWorkingDays(ctx context.Context, req *UpsertWorkingDaysRequest) (WorkingDaysResponse, error)

	// ListDepartments exists so admins can pick the department a working-day
	// configuration applies to.
	ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error)
}
