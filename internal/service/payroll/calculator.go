package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
)

var (
	hundred = decimal.NewFromInt(100)
	pfRate  = decimal.RequireFromString("0.12")
)

// ComputeInput is one employee's payroll facts for a period. PresentDays is
// the count of distinct attendance dates; PaidLeaves and LOPLeaves count
// approved leave records falling entirely inside the period.
type ComputeInput struct {
	EmployeeID  string
	Gross       decimal.Decimal
	Structure   *payroll.SalaryStructure
	TaxSlabs    []payroll.IncomeTaxConfig
	PresentDays int
	PaidLeaves  int
	LOPLeaves   int
	PayrollDate time.Time
}

// Compute derives one Payroll row. Components are percentage shares of the
// full gross; the attendance adjustment scales only the gross itself via
// per-day salary times days paid. PF is 12 percent of basic, income tax comes
// from the first slab whose inclusive range contains the gross, and net pay
// is clamped at zero.
func Compute(in ComputeInput) payroll.Payroll {
	s := in.Structure
	gross := in.Gross

	pct := func(p decimal.Decimal) decimal.Decimal {
		return gross.Mul(p).Div(hundred)
	}

	basic := pct(s.BasicPercent)
	hra := pct(s.HRAPercent)
	conveyance := pct(s.ConveyancePercent)
	medical := pct(s.MedicalPercent)
	special := pct(s.SpecialPercent)
	service := pct(s.ServiceChargePercent)

	totalDays := s.WorkingDays()
	perDay := decimal.Zero
	if totalDays > 0 {
		perDay = gross.Div(decimal.NewFromInt(int64(totalDays)))
	}

	daysPaid := in.PresentDays + in.PaidLeaves
	adjustedGross := perDay.Mul(decimal.NewFromInt(int64(daysPaid)))

	pf := basic.Mul(pfRate)

	incomeTax := decimal.Zero
	for i := range in.TaxSlabs {
		if in.TaxSlabs[i].Matches(gross) {
			incomeTax = gross.Mul(in.TaxSlabs[i].TaxPercent).Div(hundred)
			break
		}
	}

	otherAllowances := make(map[string]decimal.Decimal, len(s.Allowances))
	extraAllowances := decimal.Zero
	for _, a := range s.Allowances {
		otherAllowances[a.Name] = a.Amount
		extraAllowances = extraAllowances.Add(a.Amount)
	}

	otherDeductions := make(map[string]decimal.Decimal, len(s.Deductions))
	extraDeductions := decimal.Zero
	for _, d := range s.Deductions {
		otherDeductions[d.Name] = d.Amount
		extraDeductions = extraDeductions.Add(d.Amount)
	}

	netPay := adjustedGross.Add(extraAllowances).Sub(pf.Add(incomeTax).Add(extraDeductions))
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	structureID := s.ID

	return payroll.Payroll{
		EmployeeID:        in.EmployeeID,
		SalaryStructureID: &structureID,
		GrossSalary:       gross,
		BasicSalary:       basic,
		HRA:               hra,
		Conveyance:        conveyance,
		Medical:           medical,
		SpecialAllowance:  special,
		ServiceCharges:    service,
		PF:                pf,
		IncomeTax:         incomeTax,
		NetPay:            netPay,
		PayrollDate:       in.PayrollDate,
		TotalWorkingDays:  totalDays,
		DaysPaid:          daysPaid,
		LossOfPayDays:     in.LOPLeaves,
		OtherAllowances:   otherAllowances,
		OtherDeductions:   otherDeductions,
	}
}
