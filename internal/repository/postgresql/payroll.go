package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type payrollBatchRepositoryImpl struct {
	db *database.DB
}

func NewPayrollBatchRepository(db *database.DB) payroll.PayrollBatchRepository {
	return &payrollBatchRepositoryImpl{db: db}
}

const batchColumns = `id, company_id, month, year, status, created_at, updated_at`

func scanBatch(row pgx.Row) (*payroll.PayrollBatch, error) {
	var b payroll.PayrollBatch
	err := row.Scan(&b.ID, &b.CompanyID, &b.Month, &b.Year, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create implements payroll.PayrollBatchRepository.
func (r *payrollBatchRepositoryImpl) Create(ctx context.Context, b *payroll.PayrollBatch) (*payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches (company_id, month, year, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + batchColumns

	return scanBatch(q.QueryRow(ctx, query, b.CompanyID, b.Month, b.Year, b.Status))
}

// GetByID implements payroll.PayrollBatchRepository.
func (r *payrollBatchRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE id = $1`

	b, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrBatchNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetByPeriod implements payroll.PayrollBatchRepository.
func (r *payrollBatchRepositoryImpl) GetByPeriod(ctx context.Context, companyID string, month, year int) (*payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + batchColumns + `
		FROM payroll_batches
		WHERE company_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	b, err := scanBatch(q.QueryRow(ctx, query, companyID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrBatchNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByCompany implements payroll.PayrollBatchRepository.
func (r *payrollBatchRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + batchColumns + `
		FROM payroll_batches
		WHERE company_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, *b)
	}
	return batches, rows.Err()
}

// UpdateStatus implements payroll.PayrollBatchRepository.
func (r *payrollBatchRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.BatchStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payroll_batches SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrBatchNotFound
	}
	return nil
}

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.batch_id, p.company_id, p.employee_id, p.salary_structure_id,
	p.gross_salary, p.basic_salary, p.hra, p.conveyance, p.medical,
	p.special_allowance, p.service_charges, p.pf, p.income_tax, p.net_pay,
	p.payroll_date, p.total_working_days, p.days_paid, p.loss_of_pay_days,
	p.other_allowances, p.other_deductions, p.created_at, e.full_name
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var allowancesJSON, deductionsJSON []byte

	err := row.Scan(
		&p.ID, &p.BatchID, &p.CompanyID, &p.EmployeeID, &p.SalaryStructureID,
		&p.GrossSalary, &p.BasicSalary, &p.HRA, &p.Conveyance, &p.Medical,
		&p.SpecialAllowance, &p.ServiceCharges, &p.PF, &p.IncomeTax, &p.NetPay,
		&p.PayrollDate, &p.TotalWorkingDays, &p.DaysPaid, &p.LossOfPayDays,
		&allowancesJSON, &deductionsJSON, &p.CreatedAt, &p.EmployeeName,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	if allowancesJSON != nil {
		json.Unmarshal(allowancesJSON, &p.OtherAllowances)
	}
	if deductionsJSON != nil {
		json.Unmarshal(deductionsJSON, &p.OtherDeductions)
	}
	return p, nil
}

func marshalAmounts(m map[string]decimal.Decimal) []byte {
	if len(m) == 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return data
}

// BulkCreate implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) BulkCreate(ctx context.Context, rows []payroll.Payroll) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payrolls (batch_id, company_id, employee_id, salary_structure_id,
				gross_salary, basic_salary, hra, conveyance, medical,
				special_allowance, service_charges, pf, income_tax, net_pay,
				payroll_date, total_working_days, days_paid, loss_of_pay_days,
				other_allowances, other_deductions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			RETURNING *
		)
		SELECT ` + payrollColumns + `
		FROM inserted p
		JOIN employees e ON e.id = p.employee_id
	`

	stored := make([]payroll.Payroll, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		created, err := scanPayroll(q.QueryRow(ctx, query,
			row.BatchID, row.CompanyID, row.EmployeeID, row.SalaryStructureID,
			row.GrossSalary, row.BasicSalary, row.HRA, row.Conveyance, row.Medical,
			row.SpecialAllowance, row.ServiceCharges, row.PF, row.IncomeTax, row.NetPay,
			row.PayrollDate, row.TotalWorkingDays, row.DaysPaid, row.LossOfPayDays,
			marshalAmounts(row.OtherAllowances), marshalAmounts(row.OtherDeductions),
		))
		if err != nil {
			return nil, err
		}
		stored = append(stored, created)
	}
	return stored, nil
}

// ListByBatch implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.batch_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteByBatch implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteByBatch(ctx context.Context, batchID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM payrolls WHERE batch_id = $1`, batchID)
	return err
}
