package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.company_id, e.department_id, e.shift_id,
	e.employee_code, e.full_name, e.email, e.phone_number, e.designation,
	e.hire_date, e.resignation_date, e.employment_status, e.gross_salary,
	e.created_at, e.updated_at, e.deleted_at, d.name
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.DepartmentID, &e.ShiftID,
		&e.EmployeeCode, &e.FullName, &e.Email, &e.PhoneNumber, &e.Designation,
		&e.HireDate, &e.ResignationDate, &e.EmploymentStatus, &e.GrossSalary,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt, &e.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return found, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.company_id = $1 AND e.employment_status = 'active' AND e.deleted_at IS NULL
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// GetByID implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (*employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at
		FROM departments
		WHERE id = $1 AND company_id = $2
	`

	var d employee.Department
	err := q.QueryRow(ctx, query, id, companyID).
		Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByCompany implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at
		FROM departments
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var d employee.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
