package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
)

func testStructure() *payroll.SalaryStructure {
	return &payroll.SalaryStructure{
		ID:                   "ss-1",
		CompanyID:            "co-1",
		Name:                 "Default",
		BasicPercent:         decimal.NewFromInt(50),
		HRAPercent:           decimal.NewFromInt(20),
		ConveyancePercent:    decimal.NewFromInt(10),
		MedicalPercent:       decimal.NewFromInt(10),
		SpecialPercent:       decimal.NewFromInt(5),
		ServiceChargePercent: decimal.NewFromInt(5),
		TotalWorkingDays:     30,
	}
}

func assertDecimalNear(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	assert.InDelta(t, want, got.InexactFloat64(), 0.01)
}

func TestCompute_GoldenScenario(t *testing.T) {
	t.Parallel()

	row := Compute(ComputeInput{
		EmployeeID: "emp-1",
		Gross:      decimal.NewFromInt(50000),
		Structure:  testStructure(),
		TaxSlabs: []payroll.IncomeTaxConfig{
			{
				Name:       "Middle",
				SalaryFrom: decimal.NewFromInt(40000),
				SalaryTo:   decimal.NewFromInt(60000),
				TaxPercent: decimal.NewFromInt(10),
			},
		},
		PresentDays: 20,
		PaidLeaves:  2,
		LOPLeaves:   1,
		PayrollDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, 22, row.DaysPaid)
	assert.Equal(t, 1, row.LossOfPayDays)
	assert.Equal(t, 30, row.TotalWorkingDays)

	assertDecimalNear(t, 25000, row.BasicSalary)
	assertDecimalNear(t, 3000, row.PF)
	assertDecimalNear(t, 5000, row.IncomeTax)

	// per_day 1666.67 x 22 = 36666.67, minus pf and tax.
	assertDecimalNear(t, 28666.67, row.NetPay)
}

func TestCompute_ComponentSum(t *testing.T) {
	t.Parallel()

	gross := decimal.NewFromInt(60000)
	row := Compute(ComputeInput{
		EmployeeID:  "emp-1",
		Gross:       gross,
		Structure:   testStructure(),
		PresentDays: 30,
		PayrollDate: time.Now(),
	})

	sum := row.BasicSalary.
		Add(row.HRA).
		Add(row.Conveyance).
		Add(row.Medical).
		Add(row.SpecialAllowance).
		Add(row.ServiceCharges)
	assert.True(t, sum.Equal(gross), "percent components should sum to gross when percents sum to 100, got %s", sum)
}

func TestCompute_FlatExtrasAffectNet(t *testing.T) {
	t.Parallel()

	s := testStructure()
	s.Allowances = []payroll.AllowanceType{{Name: "Fuel", Amount: decimal.NewFromInt(1500)}}
	s.Deductions = []payroll.DeductionPolicy{{Name: "Canteen", Amount: decimal.NewFromInt(500)}}

	row := Compute(ComputeInput{
		EmployeeID:  "emp-1",
		Gross:       decimal.NewFromInt(30000),
		Structure:   s,
		PresentDays: 30,
		PayrollDate: time.Now(),
	})

	// adjusted 30000 + 1500 - (1800 pf + 0 tax + 500) = 29200
	assertDecimalNear(t, 29200, row.NetPay)
	assertDecimalNear(t, 1500, row.OtherAllowances["Fuel"])
	assertDecimalNear(t, 500, row.OtherDeductions["Canteen"])
}

func TestCompute_NoSlabMeansNoTax(t *testing.T) {
	t.Parallel()

	row := Compute(ComputeInput{
		EmployeeID: "emp-1",
		Gross:      decimal.NewFromInt(20000),
		Structure:  testStructure(),
		TaxSlabs: []payroll.IncomeTaxConfig{
			{
				Name:       "High",
				SalaryFrom: decimal.NewFromInt(80000),
				SalaryTo:   decimal.NewFromInt(100000),
				TaxPercent: decimal.NewFromInt(20),
			},
		},
		PresentDays: 30,
		PayrollDate: time.Now(),
	})

	assert.True(t, row.IncomeTax.IsZero())
}

func TestCompute_SlabBoundsInclusive(t *testing.T) {
	t.Parallel()

	slabs := []payroll.IncomeTaxConfig{
		{
			Name:       "Exact",
			SalaryFrom: decimal.NewFromInt(50000),
			SalaryTo:   decimal.NewFromInt(50000),
			TaxPercent: decimal.NewFromInt(10),
		},
	}

	row := Compute(ComputeInput{
		EmployeeID:  "emp-1",
		Gross:       decimal.NewFromInt(50000),
		Structure:   testStructure(),
		TaxSlabs:    slabs,
		PresentDays: 30,
		PayrollDate: time.Now(),
	})
	assertDecimalNear(t, 5000, row.IncomeTax)
}

func TestCompute_ZeroAttendanceClampsAtZero(t *testing.T) {
	t.Parallel()

	row := Compute(ComputeInput{
		EmployeeID:  "emp-1",
		Gross:       decimal.NewFromInt(50000),
		Structure:   testStructure(),
		PresentDays: 0,
		PayrollDate: time.Now(),
	})

	assert.Equal(t, 0, row.DaysPaid)
	// adjusted gross 0 minus pf would go negative without the clamp.
	assert.True(t, row.NetPay.IsZero())
	assert.False(t, row.NetPay.IsNegative())
}

func TestCompute_ZeroGross(t *testing.T) {
	t.Parallel()

	row := Compute(ComputeInput{
		EmployeeID:  "emp-1",
		Gross:       decimal.Zero,
		Structure:   testStructure(),
		PresentDays: 20,
		PayrollDate: time.Now(),
	})

	assert.True(t, row.NetPay.IsZero())
	assert.True(t, row.BasicSalary.IsZero())
	assert.True(t, row.PF.IsZero())
}

func TestBatchStatus_CanTransition(t *testing.T) {
	t.Parallel()

	assert.True(t, payroll.BatchStatusDraft.CanTransition(payroll.BatchStatusLocked))
	assert.False(t, payroll.BatchStatusLocked.CanTransition(payroll.BatchStatusDraft))
	assert.False(t, payroll.BatchStatusLocked.CanTransition(payroll.BatchStatusLocked))
	assert.False(t, payroll.BatchStatusDraft.CanTransition(payroll.BatchStatusDraft))
}
