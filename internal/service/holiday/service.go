package holiday

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
)

type CalendarServiceImpl struct {
	eventRepo holiday.CalendarEventRepository
}

func NewCalendarService(eventRepo holiday.CalendarEventRepository) holiday.CalendarService {
	return &CalendarServiceImpl{eventRepo: eventRepo}
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

func (s *CalendarServiceImpl) CreateEvent(ctx context.Context, req *holiday.CreateCalendarEventRequest) (holiday.CalendarEventResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return holiday.CalendarEventResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return holiday.CalendarEventResponse{}, err
	}

	created, err := s.eventRepo.Create(ctx, req.ToEntity(companyID))
	if err != nil {
		return holiday.CalendarEventResponse{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return holiday.ToResponse(created), nil
}

func (s *CalendarServiceImpl) ListEvents(ctx context.Context) ([]holiday.CalendarEventResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	responses := make([]holiday.CalendarEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, holiday.ToResponse(event))
	}

	return responses, nil
}

func (s *CalendarServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.eventRepo.Delete(ctx, id, companyID)
}
