package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
)

type shiftPolicyRepositoryImpl struct {
	db *database.DB
}

func NewShiftPolicyRepository(db *database.DB) shift.ShiftPolicyRepository {
	return &shiftPolicyRepositoryImpl{db: db}
}

// Shift boundaries live in TIME columns; scan through strings so the codec
// stays format-stable. Threshold durations are stored as whole seconds.
func scanShiftPolicy(row pgx.Row) (shift.ShiftPolicy, error) {
	var p shift.ShiftPolicy
	var checkIn, checkOut string
	var graceSec, halfSec, fullSec *int64

	err := row.Scan(
		&p.ID, &p.CompanyID, &p.ShiftType, &checkIn, &checkOut,
		&graceSec, &halfSec, &fullSec, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftPolicy{}, err
	}

	if p.CheckIn, err = time.Parse("15:04:05", checkIn); err != nil {
		return shift.ShiftPolicy{}, err
	}
	if p.CheckOut, err = time.Parse("15:04:05", checkOut); err != nil {
		return shift.ShiftPolicy{}, err
	}

	secs := func(v *int64) *time.Duration {
		if v == nil {
			return nil
		}
		d := time.Duration(*v) * time.Second
		return &d
	}
	p.GracePeriod = secs(graceSec)
	p.HalfDay = secs(halfSec)
	p.FullDay = secs(fullSec)

	return p, nil
}

func durationSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	v := int64(d.Seconds())
	return &v
}

const shiftPolicyColumns = `
	id, company_id, shift_type, check_in::text, check_out::text,
	grace_period_seconds, half_day_seconds, full_day_seconds,
	created_at, updated_at
`

// Create implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) Create(ctx context.Context, policy shift.ShiftPolicy) (shift.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_policies (company_id, shift_type, check_in, check_out,
			grace_period_seconds, half_day_seconds, full_day_seconds)
		VALUES ($1, $2, $3::time, $4::time, $5, $6, $7)
		RETURNING ` + shiftPolicyColumns

	return scanShiftPolicy(q.QueryRow(ctx, query,
		policy.CompanyID, policy.ShiftType,
		policy.CheckIn.Format("15:04:05"), policy.CheckOut.Format("15:04:05"),
		durationSeconds(policy.GracePeriod),
		durationSeconds(policy.HalfDay),
		durationSeconds(policy.FullDay),
	))
}

// GetByID implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftPolicyColumns + `
		FROM shift_policies
		WHERE id = $1 AND company_id = $2
	`

	p, err := scanShiftPolicy(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftPolicy{}, shift.ErrShiftNotFound
		}
		return shift.ShiftPolicy{}, err
	}
	return p, nil
}

// ListByCompany implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]shift.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftPolicyColumns + `
		FROM shift_policies
		WHERE company_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []shift.ShiftPolicy
	for rows.Next() {
		p, err := scanShiftPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// GetDefault implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) GetDefault(ctx context.Context, companyID string) (*shift.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftPolicyColumns + `
		FROM shift_policies
		WHERE company_id = $1
		ORDER BY id
		LIMIT 1
	`

	p, err := scanShiftPolicy(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrNoShiftConfigured
		}
		return nil, err
	}
	return &p, nil
}

// Update implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) Update(ctx context.Context, policy shift.ShiftPolicy) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_policies
		SET shift_type = $1, check_in = $2::time, check_out = $3::time,
			grace_period_seconds = $4, half_day_seconds = $5, full_day_seconds = $6,
			updated_at = NOW()
		WHERE id = $7 AND company_id = $8
	`

	tag, err := q.Exec(ctx, query,
		policy.ShiftType,
		policy.CheckIn.Format("15:04:05"), policy.CheckOut.Format("15:04:05"),
		durationSeconds(policy.GracePeriod),
		durationSeconds(policy.HalfDay),
		durationSeconds(policy.FullDay),
		policy.ID, policy.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Delete implements shift.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_policies WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

type workingDaysRepositoryImpl struct {
	db *database.DB
}

func NewWorkingDaysRepository(db *database.DB) shift.WorkingDaysRepository {
	return &workingDaysRepositoryImpl{db: db}
}

// GetByDepartment implements shift.WorkingDaysRepository.
func (r *workingDaysRepositoryImpl) GetByDepartment(ctx context.Context, departmentID string, companyID string) (*shift.DepartmentWorkingDays, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, department_id, week_start_day, week_end_day,
			   working_days_count, created_at, updated_at
		FROM department_working_days
		WHERE department_id = $1 AND company_id = $2
	`

	var cfg shift.DepartmentWorkingDays
	err := q.QueryRow(ctx, query, departmentID, companyID).Scan(
		&cfg.ID, &cfg.CompanyID, &cfg.DepartmentID, &cfg.WeekStartDay, &cfg.WeekEndDay,
		&cfg.WorkingDaysCount, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrWorkingDaysNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Upsert implements shift.WorkingDaysRepository.
func (r *workingDaysRepositoryImpl) Upsert(ctx context.Context, cfg shift.DepartmentWorkingDays) (shift.DepartmentWorkingDays, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_working_days (company_id, department_id, week_start_day, week_end_day, working_days_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, department_id) DO UPDATE
		SET week_start_day = EXCLUDED.week_start_day,
			week_end_day = EXCLUDED.week_end_day,
			working_days_count = EXCLUDED.working_days_count,
			updated_at = NOW()
		RETURNING id, company_id, department_id, week_start_day, week_end_day,
				  working_days_count, created_at, updated_at
	`

	var out shift.DepartmentWorkingDays
	err := q.QueryRow(ctx, query,
		cfg.CompanyID, cfg.DepartmentID, cfg.WeekStartDay, cfg.WeekEndDay, cfg.WorkingDaysCount,
	).Scan(
		&out.ID, &out.CompanyID, &out.DepartmentID, &out.WeekStartDay, &out.WeekEndDay,
		&out.WorkingDaysCount, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return shift.DepartmentWorkingDays{}, err
	}
	return out, nil
}
