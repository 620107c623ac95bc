package shift

import "context"

// ShiftPolicyRepository defines data access for shift policies. All methods
// take companyID to keep queries tenant-scoped.
type ShiftPolicyRepository interface {
	Create(ctx context.Context, policy ShiftPolicy) (ShiftPolicy, error)
	GetByID(ctx context.Context, id string, companyID string) (ShiftPolicy, error)
	ListByCompany(ctx context.Context, companyID string) ([]ShiftPolicy, error)

	// GetDefault returns the company's first configured shift (lowest id).
	// Used as the fallback when an attendance row has no shift attached.
	GetDefault(ctx context.Context, companyID string) (*ShiftPolicy, error)

	Update(ctx context.Context, policy ShiftPolicy) error
	Delete(ctx context.Context, id string, companyID string) error
}

// WorkingDaysRepository provides the department working-day configuration.
type WorkingDaysRepository interface {
	GetByDepartment(ctx context.Context, departmentID string, companyID string) (*DepartmentWorkingDays, error)
	Upsert(ctx context.Context, cfg DepartmentWorkingDays) (DepartmentWorkingDays, error)
}
