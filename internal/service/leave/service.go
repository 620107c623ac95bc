package leave

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveTypeRepo leave.LeaveTypeRepository
	empLeaveRepo  leave.EmpLeaveRepository
}

func NewLeaveService(
	leaveTypeRepo leave.LeaveTypeRepository,
	empLeaveRepo leave.EmpLeaveRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepo: leaveTypeRepo,
		empLeaveRepo:  empLeaveRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, _ = claims["employee_id"].(string)

	return companyID, employeeID, nil
}

func (s *LeaveServiceImpl) CreateType(ctx context.Context, req *leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.leaveTypeRepo.Create(ctx, req.ToEntity(companyID))
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return leave.ToLeaveTypeResponse(created), nil
}

func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.leaveTypeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.ToLeaveTypeResponse(lt))
	}

	return responses, nil
}

func (s *LeaveServiceImpl) Submit(ctx context.Context, req *leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if employeeID == "" {
		return leave.LeaveResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID, companyID); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.empLeaveRepo.Create(ctx, req.ToEntity(companyID, employeeID))
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req *leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.empLeaveRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	status := leave.LeaveStatus(req.Status)
	if err := s.empLeaveRepo.UpdateStatus(ctx, id, companyID, status); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	existing.Status = status
	return leave.ToLeaveResponse(existing), nil
}
