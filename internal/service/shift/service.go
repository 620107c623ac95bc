package shift

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/employee"
	"github.com/innovyx-tech/hrms-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo       shift.ShiftPolicyRepository
	workingDaysRepo shift.WorkingDaysRepository
	departmentRepo  employee.DepartmentRepository
}

func NewShiftService(
	shiftRepo shift.ShiftPolicyRepository,
	workingDaysRepo shift.WorkingDaysRepository,
	departmentRepo employee.DepartmentRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:       shiftRepo,
		workingDaysRepo: workingDaysRepo,
		departmentRepo:  departmentRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *ShiftServiceImpl) CreatePolicy(ctx context.Context, req *shift.CreateShiftPolicyRequest) (shift.ShiftPolicyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, req.ToEntity(companyID))
	if err != nil {
		return shift.ShiftPolicyResponse{}, fmt.Errorf("failed to create shift policy: %w", err)
	}

	return shift.ToResponse(created), nil
}

func (s *ShiftServiceImpl) GetPolicy(ctx context.Context, id string) (shift.ShiftPolicyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	policy, err := s.shiftRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	return shift.ToResponse(policy), nil
}

func (s *ShiftServiceImpl) ListPolicies(ctx context.Context) ([]shift.ShiftPolicyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policies, err := s.shiftRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift policies: %w", err)
	}

	responses := make([]shift.ShiftPolicyResponse, 0, len(policies))
	for _, policy := range policies {
		responses = append(responses, shift.ToResponse(policy))
	}

	return responses, nil
}

func (s *ShiftServiceImpl) UpdatePolicy(ctx context.Context, id string, req *shift.CreateShiftPolicyRequest) (shift.ShiftPolicyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftPolicyResponse{}, err
	}

	updated := req.ToEntity(companyID)
	updated.ID = existing.ID
	if err := s.shiftRepo.Update(ctx, updated); err != nil {
		return shift.ShiftPolicyResponse{}, fmt.Errorf("failed to update shift policy: %w", err)
	}

	return shift.ToResponse(updated), nil
}

func (s *ShiftServiceImpl) DeletePolicy(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.shiftRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	return s.shiftRepo.Delete(ctx, id, companyID)
}

func (s *ShiftServiceImpl) GetWorkingDays(ctx context.Context, departmentID string) (shift.WorkingDaysResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.WorkingDaysResponse{}, err
	}

	cfg, err := s.workingDaysRepo.GetByDepartment(ctx, departmentID, companyID)
	if err != nil {
		return shift.WorkingDaysResponse{}, err
	}
	if cfg == nil {
		return shift.WorkingDaysResponse{}, shift.ErrWorkingDaysNotFound
	}

	return shift.ToWorkingDaysResponse(*cfg), nil
}

func (s *ShiftServiceImpl) UpsertWorkingDays(ctx context.Context, req *shift.UpsertWorkingDaysRequest) (shift.WorkingDaysResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.WorkingDaysResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.WorkingDaysResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID, companyID); err != nil {
		return shift.WorkingDaysResponse{}, err
	}

	saved, err := s.workingDaysRepo.Upsert(ctx, req.ToEntity(companyID))
	if err != nil {
		return shift.WorkingDaysResponse{}, fmt.Errorf("failed to save working days: %w", err)
	}

	return shift.ToWorkingDaysResponse(saved), nil
}

func (s *ShiftServiceImpl) ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]employee.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, employee.ToDepartmentResponse(d))
	}

	return responses, nil
}
