package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is a company-level percentage template converting a gross
// salary into components. Percent fields are normalized to zero at load time;
// a null column never leaks into arithmetic.
type SalaryStructure struct {
	ID                   string
	CompanyID            string
	Name                 string
	BasicPercent         decimal.Decimal
	HRAPercent           decimal.Decimal
	ConveyancePercent    decimal.Decimal
	MedicalPercent       decimal.Decimal
	SpecialPercent       decimal.Decimal
	ServiceChargePercent decimal.Decimal
	TotalWorkingDays     int
	CreatedAt            time.Time

	Allowances []AllowanceType
	Deductions []DeductionPolicy
}

// WorkingDays returns the configured working-day divisor, defaulting to 30.
func (s *SalaryStructure) WorkingDays() int {
	if s.TotalWorkingDays <= 0 {
		return 30
	}
	return s.TotalWorkingDays
}

// AllowanceType is a flat ad-hoc allowance attached to a structure. Amounts
// are absolute, never percentage-scaled.
type AllowanceType struct {
	ID                string
	SalaryStructureID string
	Name              string
	Amount            decimal.Decimal
}

// DeductionPolicy is the flat deduction counterpart of AllowanceType.
type DeductionPolicy struct {
	ID                string
	SalaryStructureID string
	Name              string
	Amount            decimal.Decimal
}

// IncomeTaxConfig is one tax slab. A gross salary matches when
// salary_from <= gross <= salary_to.
type IncomeTaxConfig struct {
	ID         string
	CompanyID  string
	Name       string
	SalaryFrom decimal.Decimal
	SalaryTo   decimal.Decimal
	TaxPercent decimal.Decimal
}

// Matches reports whether gross falls inside the slab's inclusive range.
func (c *IncomeTaxConfig) Matches(gross decimal.Decimal) bool {
	return gross.GreaterThanOrEqual(c.SalaryFrom) && gross.LessThanOrEqual(c.SalaryTo)
}

// BatchStatus is the payroll batch lifecycle. The only legal transition is
// Draft to Locked; Locked is terminal.
type BatchStatus string

const (
	BatchStatusDraft  BatchStatus = "Draft"
	BatchStatusLocked BatchStatus = "Locked"
)

// CanTransition reports whether moving to next is allowed from the current
// status.
func (s BatchStatus) CanTransition(next BatchStatus) bool {
	return s == BatchStatusDraft && next == BatchStatusLocked
}

// PayrollBatch is one month's payroll run. Identity key is
// (company, month, year); a second Locked batch for the same key is rejected.
type PayrollBatch struct {
	ID        string
	CompanyID string
	Month     int
	Year      int
	Status    BatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payroll is one employee's computed pay for a batch.
type Payroll struct {
	ID                string
	BatchID           string
	CompanyID         string
	EmployeeID        string
	SalaryStructureID *string
	GrossSalary       decimal.Decimal
	BasicSalary       decimal.Decimal
	HRA               decimal.Decimal
	Conveyance        decimal.Decimal
	Medical           decimal.Decimal
	SpecialAllowance  decimal.Decimal
	ServiceCharges    decimal.Decimal
	PF                decimal.Decimal
	IncomeTax         decimal.Decimal
	NetPay            decimal.Decimal
	PayrollDate       time.Time
	TotalWorkingDays  int
	DaysPaid          int
	LossOfPayDays     int
	OtherAllowances   map[string]decimal.Decimal
	OtherDeductions   map[string]decimal.Decimal
	CreatedAt         time.Time

	// Joined fields
	EmployeeName *string
}
