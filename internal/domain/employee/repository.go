package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
	// GetActiveByCompanyID returns active, non-deleted employees ordered by
	// employee code.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id, companyID string) (*Department, error)
	ListByCompany(ctx context.Context, companyID string) ([]Department, error)
}
