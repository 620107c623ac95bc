package payroll

import "context"

// PayrollService runs monthly payroll for the authenticated company. Preview
// computes without persisting, Generate writes or refreshes a Draft batch, and
// Finalize recomputes and locks a batch in one transaction.
type PayrollService interface {
	Preview(ctx context.Context, req *RunPayrollRequest) ([]PayrollRowResponse, error)
	Generate(ctx context.Context, req *RunPayrollRequest) (*BatchResponse, error)
	Finalize(ctx context.Context, batchID string) (*BatchResponse, error)
	GetBatch(ctx context.Context, batchID string) (*BatchResponse, error)
	ListBatches(ctx context.Context) ([]BatchResponse, error)

	CreateSalaryStructure(ctx context.Context, req *CreateSalaryStructureRequest) (*SalaryStructureResponse, error)
	ListSalaryStructures(ctx context.Context) ([]SalaryStructureResponse, error)
	AddAllowanceType(ctx context.Context, req *CreateAllowanceTypeRequest) (*AllowanceTypeResponse, error)
	AddDeductionPolicy(ctx context.Context, req *CreateDeductionPolicyRequest) (*DeductionPolicyResponse, error)
	CreateIncomeTaxConfig(ctx context.Context, req *CreateIncomeTaxConfigRequest) (*IncomeTaxConfig, error)
}
