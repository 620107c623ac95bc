package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type salaryStructureRepositoryImpl struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{db: db}
}

const salaryStructureColumns = `
	id, company_id, name, basic_percent, hra_percent, conveyance_percent,
	medical_percent, special_percent, service_charge_percent,
	total_working_days, created_at
`

func scanSalaryStructure(row pgx.Row) (*payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.BasicPercent, &s.HRAPercent, &s.ConveyancePercent,
		&s.MedicalPercent, &s.SpecialPercent, &s.ServiceChargePercent,
		&s.TotalWorkingDays, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) Create(ctx context.Context, s *payroll.SalaryStructure) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (company_id, name, basic_percent, hra_percent,
			conveyance_percent, medical_percent, special_percent, service_charge_percent,
			total_working_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + salaryStructureColumns

	return scanSalaryStructure(q.QueryRow(ctx, query,
		s.CompanyID, s.Name, s.BasicPercent, s.HRAPercent,
		s.ConveyancePercent, s.MedicalPercent, s.SpecialPercent, s.ServiceChargePercent,
		s.WorkingDays(),
	))
}

// GetByID implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryStructureColumns + `
		FROM salary_structures
		WHERE id = $1 AND company_id = $2
	`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrStructureNotFound
		}
		return nil, err
	}

	if err := r.loadComponents(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetActive implements payroll.SalaryStructureRepository. Latest created
// wins; equal timestamps break the tie on id descending.
func (r *salaryStructureRepositoryImpl) GetActive(ctx context.Context, companyID string) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryStructureColumns + `
		FROM salary_structures
		WHERE company_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrStructureNotFound
		}
		return nil, err
	}

	if err := r.loadComponents(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListByCompany implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryStructureColumns + `
		FROM salary_structures
		WHERE company_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range structures {
		if err := r.loadComponents(ctx, &structures[i]); err != nil {
			return nil, err
		}
	}
	return structures, nil
}

func (r *salaryStructureRepositoryImpl) loadComponents(ctx context.Context, s *payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, salary_structure_id, name, amount
		FROM allowance_types
		WHERE salary_structure_id = $1
		ORDER BY name
	`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a payroll.AllowanceType
		if err := rows.Scan(&a.ID, &a.SalaryStructureID, &a.Name, &a.Amount); err != nil {
			return err
		}
		s.Allowances = append(s.Allowances, a)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	drows, err := q.Query(ctx, `
		SELECT id, salary_structure_id, name, amount
		FROM deduction_policies
		WHERE salary_structure_id = $1
		ORDER BY name
	`, s.ID)
	if err != nil {
		return err
	}
	defer drows.Close()
	for drows.Next() {
		var d payroll.DeductionPolicy
		if err := drows.Scan(&d.ID, &d.SalaryStructureID, &d.Name, &d.Amount); err != nil {
			return err
		}
		s.Deductions = append(s.Deductions, d)
	}
	return drows.Err()
}

// AddAllowance implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) AddAllowance(ctx context.Context, a *payroll.AllowanceType) (*payroll.AllowanceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowance_types (salary_structure_id, name, amount)
		VALUES ($1, $2, $3)
		RETURNING id, salary_structure_id, name, amount
	`

	var created payroll.AllowanceType
	err := q.QueryRow(ctx, query, a.SalaryStructureID, a.Name, a.Amount).
		Scan(&created.ID, &created.SalaryStructureID, &created.Name, &created.Amount)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddDeduction implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) AddDeduction(ctx context.Context, d *payroll.DeductionPolicy) (*payroll.DeductionPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_policies (salary_structure_id, name, amount)
		VALUES ($1, $2, $3)
		RETURNING id, salary_structure_id, name, amount
	`

	var created payroll.DeductionPolicy
	err := q.QueryRow(ctx, query, d.SalaryStructureID, d.Name, d.Amount).
		Scan(&created.ID, &created.SalaryStructureID, &created.Name, &created.Amount)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

type incomeTaxConfigRepositoryImpl struct {
	db *database.DB
}

func NewIncomeTaxConfigRepository(db *database.DB) payroll.IncomeTaxConfigRepository {
	return &incomeTaxConfigRepositoryImpl{db: db}
}

// Create implements payroll.IncomeTaxConfigRepository.
func (r *incomeTaxConfigRepositoryImpl) Create(ctx context.Context, c *payroll.IncomeTaxConfig) (*payroll.IncomeTaxConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO income_tax_configs (company_id, name, salary_from, salary_to, tax_percent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, name, salary_from, salary_to, tax_percent
	`

	var created payroll.IncomeTaxConfig
	err := q.QueryRow(ctx, query, c.CompanyID, c.Name, c.SalaryFrom, c.SalaryTo, c.TaxPercent).
		Scan(&created.ID, &created.CompanyID, &created.Name, &created.SalaryFrom, &created.SalaryTo, &created.TaxPercent)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByCompany implements payroll.IncomeTaxConfigRepository.
func (r *incomeTaxConfigRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]payroll.IncomeTaxConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, salary_from, salary_to, tax_percent
		FROM income_tax_configs
		WHERE company_id = $1
		ORDER BY salary_from
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []payroll.IncomeTaxConfig
	for rows.Next() {
		var c payroll.IncomeTaxConfig
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.SalaryFrom, &c.SalaryTo, &c.TaxPercent); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}
