package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (company_id, leave_name, count, is_paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, leave_name, count, is_paid, created_at, updated_at
	`

	var created leave.LeaveType
	err := q.QueryRow(ctx, query, lt.CompanyID, lt.LeaveName, lt.Count, lt.IsPaid).Scan(
		&created.ID, &created.CompanyID, &created.LeaveName, &created.Count, &created.IsPaid,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveType{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, leave_name, count, is_paid, created_at, updated_at
		FROM leave_types
		WHERE id = $1 AND company_id = $2
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&lt.ID, &lt.CompanyID, &lt.LeaveName, &lt.Count, &lt.IsPaid,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// ListByCompany implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, leave_name, count, is_paid, created_at, updated_at
		FROM leave_types
		WHERE company_id = $1
		ORDER BY leave_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.CompanyID, &lt.LeaveName, &lt.Count, &lt.IsPaid,
			&lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, rows.Err()
}

type empLeaveRepositoryImpl struct {
	db *database.DB
}

func NewEmpLeaveRepository(db *database.DB) leave.EmpLeaveRepository {
	return &empLeaveRepositoryImpl{db: db}
}

const empLeaveColumns = `
	el.id, el.company_id, el.employee_id, el.reporting_manager_id, el.leave_type_id,
	el.status, el.reason, el.from_date, el.to_date, el.created_at,
	lt.leave_name, lt.is_paid
`

func scanEmpLeave(row pgx.Row) (leave.EmpLeave, error) {
	var l leave.EmpLeave
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.EmployeeID, &l.ReportingManagerID, &l.LeaveTypeID,
		&l.Status, &l.Reason, &l.FromDate, &l.ToDate, &l.CreatedAt,
		&l.LeaveTypeName, &l.LeaveTypePaid,
	)
	return l, err
}

// Create implements leave.EmpLeaveRepository.
func (r *empLeaveRepositoryImpl) Create(ctx context.Context, req leave.EmpLeave) (leave.EmpLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO emp_leaves (company_id, employee_id, reporting_manager_id, leave_type_id, status, reason, from_date, to_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + empLeaveColumns + `
		FROM inserted el
		LEFT JOIN leave_types lt ON lt.id = el.leave_type_id
	`

	return scanEmpLeave(q.QueryRow(ctx, query,
		req.CompanyID, req.EmployeeID, req.ReportingManagerID, req.LeaveTypeID,
		req.Status, req.Reason, req.FromDate, req.ToDate,
	))
}

// GetByID implements leave.EmpLeaveRepository.
func (r *empLeaveRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.EmpLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + empLeaveColumns + `
		FROM emp_leaves el
		LEFT JOIN leave_types lt ON lt.id = el.leave_type_id
		WHERE el.id = $1 AND el.company_id = $2
	`

	l, err := scanEmpLeave(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.EmpLeave{}, leave.ErrLeaveRequestNotFound
		}
		return leave.EmpLeave{}, err
	}
	return l, nil
}

// UpdateStatus implements leave.EmpLeaveRepository.
func (r *empLeaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, companyID string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE emp_leaves SET status = $1 WHERE id = $2 AND company_id = $3`,
		status, id, companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// ListApprovedOverlapping implements leave.EmpLeaveRepository.
func (r *empLeaveRepositoryImpl) ListApprovedOverlapping(ctx context.Context, companyID string, from, to time.Time) ([]leave.EmpLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + empLeaveColumns + `
		FROM emp_leaves el
		LEFT JOIN leave_types lt ON lt.id = el.leave_type_id
		WHERE el.company_id = $1 AND el.status = 'Approved'
			AND el.from_date <= $3 AND el.to_date >= $2
		ORDER BY el.from_date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmpLeaves(rows)
}

// ListApprovedForEmployee implements leave.EmpLeaveRepository.
func (r *empLeaveRepositoryImpl) ListApprovedForEmployee(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]leave.EmpLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + empLeaveColumns + `
		FROM emp_leaves el
		LEFT JOIN leave_types lt ON lt.id = el.leave_type_id
		WHERE el.employee_id = $1 AND el.company_id = $2 AND el.status = 'Approved'
			AND el.from_date <= $4 AND el.to_date >= $3
		ORDER BY el.from_date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmpLeaves(rows)
}

func collectEmpLeaves(rows pgx.Rows) ([]leave.EmpLeave, error) {
	var out []leave.EmpLeave
	for rows.Next() {
		l, err := scanEmpLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// CountApprovedWithin implements leave.EmpLeaveRepository. Both range ends
// must fall inside the period; the count is per request record.
func (r *empLeaveRepositoryImpl) CountApprovedWithin(ctx context.Context, employeeID string, companyID string, from, to time.Time, paid bool) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM emp_leaves el
		JOIN leave_types lt ON lt.id = el.leave_type_id
		WHERE el.employee_id = $1 AND el.company_id = $2 AND el.status = 'Approved'
			AND lt.is_paid = $3
			AND el.from_date >= $4 AND el.to_date <= $5
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, companyID, paid, from, to).Scan(&count)
	return count, err
}
