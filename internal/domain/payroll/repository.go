package payroll

import "context"

type SalaryStructureRepository interface {
	Create(ctx context.Context, s *SalaryStructure) (*SalaryStructure, error)
	GetByID(ctx context.Context, id, companyID string) (*SalaryStructure, error)
	// GetActive returns the most recently created structure for the company,
	// with its allowances and deductions loaded.
	GetActive(ctx context.Context, companyID string) (*SalaryStructure, error)
	ListByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error)
	AddAllowance(ctx context.Context, a *AllowanceType) (*AllowanceType, error)
	AddDeduction(ctx context.Context, d *DeductionPolicy) (*DeductionPolicy, error)
}

type IncomeTaxConfigRepository interface {
	Create(ctx context.Context, c *IncomeTaxConfig) (*IncomeTaxConfig, error)
	ListByCompany(ctx context.Context, companyID string) ([]IncomeTaxConfig, error)
}

type PayrollBatchRepository interface {
	Create(ctx context.Context, b *PayrollBatch) (*PayrollBatch, error)
	GetByID(ctx context.Context, id string) (*PayrollBatch, error)
	// GetByPeriod returns the batch for (companyID, month, year) regardless of
	// status, or ErrBatchNotFound.
	GetByPeriod(ctx context.Context, companyID string, month, year int) (*PayrollBatch, error)
	ListByCompany(ctx context.Context, companyID string) ([]PayrollBatch, error)
	UpdateStatus(ctx context.Context, id string, status BatchStatus) error
}

type PayrollRepository interface {
	BulkCreate(ctx context.Context, rows []Payroll) ([]Payroll, error)
	ListByBatch(ctx context.Context, batchID string) ([]Payroll, error)
	DeleteByBatch(ctx context.Context, batchID string) error
}
