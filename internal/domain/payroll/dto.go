package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

// ========== SALARY STRUCTURE DTOs ==========

type CreateSalaryStructureRequest struct {
	Name                 string           `json:"name"`
	BasicPercent         *decimal.Decimal `json:"basic_percent,omitempty"`
	HRAPercent           *decimal.Decimal `json:"hra_percent,omitempty"`
	ConveyancePercent    *decimal.Decimal `json:"conveyance_percent,omitempty"`
	MedicalPercent       *decimal.Decimal `json:"medical_percent,omitempty"`
	SpecialPercent       *decimal.Decimal `json:"special_percent,omitempty"`
	ServiceChargePercent *decimal.Decimal `json:"service_charge_percent,omitempty"`
	TotalWorkingDays     *int             `json:"total_working_days,omitempty"`
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	for field, pct := range map[string]*decimal.Decimal{
		"basic_percent":          r.BasicPercent,
		"hra_percent":            r.HRAPercent,
		"conveyance_percent":     r.ConveyancePercent,
		"medical_percent":        r.MedicalPercent,
		"special_percent":        r.SpecialPercent,
		"service_charge_percent": r.ServiceChargePercent,
	} {
		if pct != nil && pct.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.TotalWorkingDays != nil && *r.TotalWorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_working_days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds a structure with missing percents normalized to zero.
func (r *CreateSalaryStructureRequest) ToEntity(companyID string) *SalaryStructure {
	pct := func(p *decimal.Decimal) decimal.Decimal {
		if p == nil {
			return decimal.Zero
		}
		return *p
	}
	s := &SalaryStructure{
		CompanyID:            companyID,
		Name:                 r.Name,
		BasicPercent:         pct(r.BasicPercent),
		HRAPercent:           pct(r.HRAPercent),
		ConveyancePercent:    pct(r.ConveyancePercent),
		MedicalPercent:       pct(r.MedicalPercent),
		SpecialPercent:       pct(r.SpecialPercent),
		ServiceChargePercent: pct(r.ServiceChargePercent),
		TotalWorkingDays:     30,
	}
	if r.TotalWorkingDays != nil {
		s.TotalWorkingDays = *r.TotalWorkingDays
	}
	return s
}

type SalaryStructureResponse struct {
	ID                   string                    `json:"id"`
	CompanyID            string                    `json:"company_id"`
	Name                 string                    `json:"name"`
	BasicPercent         decimal.Decimal           `json:"basic_percent"`
	HRAPercent           decimal.Decimal           `json:"hra_percent"`
	ConveyancePercent    decimal.Decimal           `json:"conveyance_percent"`
	MedicalPercent       decimal.Decimal           `json:"medical_percent"`
	SpecialPercent       decimal.Decimal           `json:"special_percent"`
	ServiceChargePercent decimal.Decimal           `json:"service_charge_percent"`
	TotalWorkingDays     int                       `json:"total_working_days"`
	Allowances           []AllowanceTypeResponse   `json:"allowances"`
	Deductions           []DeductionPolicyResponse `json:"deductions"`
}

type AllowanceTypeResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type DeductionPolicyResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func (s *SalaryStructure) ToResponse() *SalaryStructureResponse {
	resp := &SalaryStructureResponse{
		ID:                   s.ID,
		CompanyID:            s.CompanyID,
		Name:                 s.Name,
		BasicPercent:         s.BasicPercent,
		HRAPercent:           s.HRAPercent,
		ConveyancePercent:    s.ConveyancePercent,
		MedicalPercent:       s.MedicalPercent,
		SpecialPercent:       s.SpecialPercent,
		ServiceChargePercent: s.ServiceChargePercent,
		TotalWorkingDays:     s.WorkingDays(),
		Allowances:           make([]AllowanceTypeResponse, 0, len(s.Allowances)),
		Deductions:           make([]DeductionPolicyResponse, 0, len(s.Deductions)),
	}
	for _, a := range s.Allowances {
		resp.Allowances = append(resp.Allowances, AllowanceTypeResponse{ID: a.ID, Name: a.Name, Amount: a.Amount})
	}
	for _, d := range s.Deductions {
		resp.Deductions = append(resp.Deductions, DeductionPolicyResponse{ID: d.ID, Name: d.Name, Amount: d.Amount})
	}
	return resp
}

type CreateAllowanceTypeRequest struct {
	SalaryStructureID string          `json:"salary_structure_id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
}

func (r *CreateAllowanceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryStructureID == "" {
		errs = append(errs, validator.ValidationError{Field: "salary_structure_id", Message: "is required"})
	}
	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDeductionPolicyRequest struct {
	SalaryStructureID string          `json:"salary_structure_id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
}

func (r *CreateDeductionPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryStructureID == "" {
		errs = append(errs, validator.ValidationError{Field: "salary_structure_id", Message: "is required"})
	}
	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== TAX CONFIG DTOs ==========

type CreateIncomeTaxConfigRequest struct {
	Name       string          `json:"name"`
	SalaryFrom decimal.Decimal `json:"salary_from"`
	SalaryTo   decimal.Decimal `json:"salary_to"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
}

func (r *CreateIncomeTaxConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.SalaryTo.LessThan(r.SalaryFrom) {
		errs = append(errs, validator.ValidationError{Field: "salary_to", Message: "must not be less than salary_from"})
	}
	if r.TaxPercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tax_percent", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== BATCH DTOs ==========

type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRowResponse struct {
	ID               string                     `json:"id,omitempty"`
	EmployeeID       string                     `json:"employee_id"`
	EmployeeName     *string                    `json:"employee_name,omitempty"`
	GrossSalary      decimal.Decimal            `json:"gross_salary"`
	BasicSalary      decimal.Decimal            `json:"basic_salary"`
	HRA              decimal.Decimal            `json:"hra"`
	Conveyance       decimal.Decimal            `json:"conveyance"`
	Medical          decimal.Decimal            `json:"medical"`
	SpecialAllowance decimal.Decimal            `json:"special_allowance"`
	ServiceCharges   decimal.Decimal            `json:"service_charges"`
	OtherAllowances  map[string]decimal.Decimal `json:"other_allowances,omitempty"`
	OtherDeductions  map[string]decimal.Decimal `json:"other_deductions,omitempty"`
	PF               decimal.Decimal            `json:"pf"`
	IncomeTax        decimal.Decimal            `json:"income_tax"`
	NetPay           decimal.Decimal            `json:"net_pay"`
	TotalWorkingDays int                        `json:"total_working_days"`
	DaysPaid         int                        `json:"days_paid"`
	LossOfPayDays    int                        `json:"loss_of_pay_days"`
	PayrollDate      string                     `json:"payroll_date"`
}

func (p *Payroll) ToRowResponse() PayrollRowResponse {
	return PayrollRowResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		GrossSalary:      p.GrossSalary,
		BasicSalary:      p.BasicSalary,
		HRA:              p.HRA,
		Conveyance:       p.Conveyance,
		Medical:          p.Medical,
		SpecialAllowance: p.SpecialAllowance,
		ServiceCharges:   p.ServiceCharges,
		OtherAllowances:  p.OtherAllowances,
		OtherDeductions:  p.OtherDeductions,
		PF:               p.PF,
		IncomeTax:        p.IncomeTax,
		NetPay:           p.NetPay,
		TotalWorkingDays: p.TotalWorkingDays,
		DaysPaid:         p.DaysPaid,
		LossOfPayDays:    p.LossOfPayDays,
		PayrollDate:      p.PayrollDate.Format("2006-01-02"),
	}
}

type BatchResponse struct {
	ID        string               `json:"id"`
	Month     int                  `json:"month"`
	Year      int                  `json:"year"`
	Status    BatchStatus          `json:"status"`
	Payrolls  []PayrollRowResponse `json:"payrolls,omitempty"`
	CreatedAt string               `json:"created_at"`
}

func (b *PayrollBatch) ToResponse() *BatchResponse {
	return &BatchResponse{
		ID:        b.ID,
		Month:     b.Month,
		Year:      b.Year,
		Status:    b.Status,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
