package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/company"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/payroll"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/timeutil"
	"github.com/innovyx-tech/hrms-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	batchRepo      payroll.PayrollBatchRepository
	payrollRepo    payroll.PayrollRepository
	structureRepo  payroll.SalaryStructureRepository
	taxRepo        payroll.IncomeTaxConfigRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.EmpLeaveRepository
	companyRepo    company.CompanyRepository
}

func NewPayrollService(
	db *database.DB,
	batchRepo payroll.PayrollBatchRepository,
	payrollRepo payroll.PayrollRepository,
	structureRepo payroll.SalaryStructureRepository,
	taxRepo payroll.IncomeTaxConfigRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.EmpLeaveRepository,
	companyRepo company.CompanyRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		batchRepo:      batchRepo,
		payrollRepo:    payrollRepo,
		structureRepo:  structureRepo,
		taxRepo:        taxRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		companyRepo:    companyRepo,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *PayrollServiceImpl) companyLocation(ctx context.Context, companyID string) *time.Location {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil || comp.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(comp.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// computeRows runs the shared period computation used by Preview, Generate
// and Finalize. Rows come back without batch or company stamped on them.
func (s *PayrollServiceImpl) computeRows(ctx context.Context, companyID string, month, year int) ([]payroll.Payroll, error) {
	structure, err := s.structureRepo.GetActive(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrStructureNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrNoSalaryStructure
		}
		return nil, fmt.Errorf("failed to load salary structure: %w", err)
	}

	slabs, err := s.taxRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax slabs: %w", err)
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, payroll.ErrNoEmployees
	}

	// The period window follows the company's business timezone so payroll
	// and the attendance aggregator count the same calendar days.
	loc := s.companyLocation(ctx, companyID)
	first, last := timeutil.MonthBounds(month, year, loc)
	now := time.Now()
	if first.After(now) {
		return nil, payroll.ErrInvalidPeriod
	}

	rows := make([]payroll.Payroll, 0, len(employees))
	for i := range employees {
		emp := &employees[i]

		gross := decimal.Zero
		if emp.GrossSalary != nil {
			gross = *emp.GrossSalary
		}

		presentDays, err := s.attendanceRepo.CountDistinctDates(ctx, emp.ID, companyID, first, last)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendance for employee %s: %w", emp.ID, err)
		}

		paidLeaves, err := s.leaveRepo.CountApprovedWithin(ctx, emp.ID, companyID, first, last, true)
		if err != nil {
			return nil, fmt.Errorf("failed to count paid leaves for employee %s: %w", emp.ID, err)
		}

		lopLeaves, err := s.leaveRepo.CountApprovedWithin(ctx, emp.ID, companyID, first, last, false)
		if err != nil {
			return nil, fmt.Errorf("failed to count unpaid leaves for employee %s: %w", emp.ID, err)
		}

		row := Compute(ComputeInput{
			EmployeeID:  emp.ID,
			Gross:       gross,
			Structure:   structure,
			TaxSlabs:    slabs,
			PresentDays: presentDays,
			PaidLeaves:  paidLeaves,
			LOPLeaves:   lopLeaves,
			PayrollDate: now,
		})
		row.CompanyID = companyID
		name := emp.FullName
		row.EmployeeName = &name
		rows = append(rows, row)
	}

	return rows, nil
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req *payroll.RunPayrollRequest) ([]payroll.PayrollRowResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.computeRows(ctx, companyID, req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRowResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].ToRowResponse())
	}
	return responses, nil
}

// Generate implements payroll.PayrollService. An existing Draft batch for
// the period is refreshed in place; a Locked one makes the period immutable.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req *payroll.RunPayrollRequest) (*payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.computeRows(ctx, companyID, req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.GetByPeriod(ctx, companyID, req.Month, req.Year)
	if err != nil && !errors.Is(err, payroll.ErrBatchNotFound) {
		return nil, fmt.Errorf("failed to look up batch: %w", err)
	}
	if batch != nil && batch.Status == payroll.BatchStatusLocked {
		return nil, payroll.ErrDuplicateLockedBatch
	}

	var stored []payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if batch == nil {
			batch, err = s.batchRepo.Create(txCtx, &payroll.PayrollBatch{
				CompanyID: companyID,
				Month:     req.Month,
				Year:      req.Year,
				Status:    payroll.BatchStatusDraft,
			})
			if err != nil {
				return fmt.Errorf("failed to create batch: %w", err)
			}
		} else if err := s.payrollRepo.DeleteByBatch(txCtx, batch.ID); err != nil {
			return fmt.Errorf("failed to clear draft rows: %w", err)
		}

		for i := range rows {
			rows[i].BatchID = batch.ID
		}
		stored, err = s.payrollRepo.BulkCreate(txCtx, rows)
		if err != nil {
			return fmt.Errorf("failed to store payroll rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := batch.ToResponse()
	for i := range stored {
		resp.Payrolls = append(resp.Payrolls, stored[i].ToRowResponse())
	}
	return resp, nil
}

// Finalize implements payroll.PayrollService. The whole batch is recomputed
// and locked in one transaction; any failure aborts with no partial rows.
func (s *PayrollServiceImpl) Finalize(ctx context.Context, batchID string) (*payroll.BatchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.CompanyID != companyID {
		return nil, payroll.ErrBatchNotOwned
	}
	if !batch.Status.CanTransition(payroll.BatchStatusLocked) {
		return nil, payroll.ErrBatchAlreadyLocked
	}

	rows, err := s.computeRows(ctx, companyID, batch.Month, batch.Year)
	if err != nil {
		return nil, err
	}

	var stored []payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrollRepo.DeleteByBatch(txCtx, batch.ID); err != nil {
			return fmt.Errorf("failed to clear draft rows: %w", err)
		}

		for i := range rows {
			rows[i].BatchID = batch.ID
		}
		stored, err = s.payrollRepo.BulkCreate(txCtx, rows)
		if err != nil {
			return fmt.Errorf("failed to store payroll rows: %w", err)
		}

		if err := s.batchRepo.UpdateStatus(txCtx, batch.ID, payroll.BatchStatusLocked); err != nil {
			return fmt.Errorf("failed to lock batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch.Status = payroll.BatchStatusLocked
	resp := batch.ToResponse()
	for i := range stored {
		resp.Payrolls = append(resp.Payrolls, stored[i].ToRowResponse())
	}
	return resp, nil
}

// GetBatch implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetBatch(ctx context.Context, batchID string) (*payroll.BatchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.CompanyID != companyID {
		return nil, payroll.ErrBatchNotOwned
	}

	rows, err := s.payrollRepo.ListByBatch(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll rows: %w", err)
	}

	resp := batch.ToResponse()
	for i := range rows {
		resp.Payrolls = append(resp.Payrolls, rows[i].ToRowResponse())
	}
	return resp, nil
}

// ListBatches implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListBatches(ctx context.Context) ([]payroll.BatchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, *batches[i].ToResponse())
	}
	return responses, nil
}

// CreateSalaryStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateSalaryStructure(ctx context.Context, req *payroll.CreateSalaryStructureRequest) (*payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.structureRepo.Create(ctx, req.ToEntity(companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to create salary structure: %w", err)
	}
	return created.ToResponse(), nil
}

// ListSalaryStructures implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSalaryStructures(ctx context.Context) ([]payroll.SalaryStructureResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	structures, err := s.structureRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}

	responses := make([]payroll.SalaryStructureResponse, 0, len(structures))
	for i := range structures {
		responses = append(responses, *structures[i].ToResponse())
	}
	return responses, nil
}

// AddAllowanceType implements payroll.PayrollService.
func (s *PayrollServiceImpl) AddAllowanceType(ctx context.Context, req *payroll.CreateAllowanceTypeRequest) (*payroll.AllowanceTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Structure must belong to the caller's company.
	if _, err := s.structureRepo.GetByID(ctx, req.SalaryStructureID, companyID); err != nil {
		return nil, err
	}

	created, err := s.structureRepo.AddAllowance(ctx, &payroll.AllowanceType{
		SalaryStructureID: req.SalaryStructureID,
		Name:              req.Name,
		Amount:            req.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add allowance type: %w", err)
	}
	return &payroll.AllowanceTypeResponse{ID: created.ID, Name: created.Name, Amount: created.Amount}, nil
}

// AddDeductionPolicy implements payroll.PayrollService.
func (s *PayrollServiceImpl) AddDeductionPolicy(ctx context.Context, req *payroll.CreateDeductionPolicyRequest) (*payroll.DeductionPolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.structureRepo.GetByID(ctx, req.SalaryStructureID, companyID); err != nil {
		return nil, err
	}

	created, err := s.structureRepo.AddDeduction(ctx, &payroll.DeductionPolicy{
		SalaryStructureID: req.SalaryStructureID,
		Name:              req.Name,
		Amount:            req.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add deduction policy: %w", err)
	}
	return &payroll.DeductionPolicyResponse{ID: created.ID, Name: created.Name, Amount: created.Amount}, nil
}

// CreateIncomeTaxConfig implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateIncomeTaxConfig(ctx context.Context, req *payroll.CreateIncomeTaxConfigRequest) (*payroll.IncomeTaxConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.taxRepo.Create(ctx, &payroll.IncomeTaxConfig{
		CompanyID:  companyID,
		Name:       req.Name,
		SalaryFrom: req.SalaryFrom,
		SalaryTo:   req.SalaryTo,
		TaxPercent: req.TaxPercent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create income tax config: %w", err)
	}
	return created, nil
}
