package payroll

import "errors"

var (
	ErrBatchNotFound        = errors.New("payroll batch not found")
	ErrBatchNotOwned        = errors.New("payroll batch belongs to another company")
	ErrBatchAlreadyLocked   = errors.New("payroll batch is already locked")
	ErrDuplicateLockedBatch = errors.New("a locked payroll batch already exists for this period")
	ErrNoSalaryStructure    = errors.New("no salary structure configured for company")
	ErrStructureNotFound    = errors.New("salary structure not found")
	ErrNoEmployees          = errors.New("no active employees to run payroll for")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
