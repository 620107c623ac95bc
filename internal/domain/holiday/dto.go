package holiday

import (
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

type CreateCalendarEventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // "2006-01-02"
	Description string `json:"description"`
	IsHoliday   *bool  `json:"is_holiday"`
}

func (r CreateCalendarEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateCalendarEventRequest) ToEntity(companyID string) CalendarEvent {
	date, _ := time.Parse("2006-01-02", r.Date)

	event := CalendarEvent{
		CompanyID:   companyID,
		Name:        r.Name,
		Date:        date,
		Description: r.Description,
		IsHoliday:   true,
	}
	if r.IsHoliday != nil {
		event.IsHoliday = *r.IsHoliday
	}
	return event
}

type CalendarEventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	IsHoliday   bool   `json:"is_holiday"`
}

func ToResponse(event CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Date:        event.Date.Format("2006-01-02"),
		Description: event.Description,
		IsHoliday:   event.IsHoliday,
	}
}
