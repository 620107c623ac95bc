package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	CompanyID        string
	DepartmentID     *string
	ShiftID          *string
	EmployeeCode     string
	FullName         string
	Email            string
	PhoneNumber      *string
	Designation      *string
	HireDate         time.Time
	ResignationDate  *time.Time
	EmploymentStatus EmploymentStatus
	GrossSalary      *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// Joined fields
	DepartmentName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsActive reports whether the employee should be included in payroll runs
// and attendance sweeps.
func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive && e.DeletedAt == nil
}

type Department struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
