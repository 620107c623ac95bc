package shift

import (
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

type CreateShiftPolicyRequest struct {
	ShiftType    string   `json:"shift_type"`
	CheckIn      string   `json:"checkin"`       // "15:04:05"
	CheckOut     string   `json:"checkout"`      // "15:04:05"
	GraceMinutes *int     `json:"grace_minutes"` // optional
	HalfDayHours *float64 `json:"half_day_hours"`
	FullDayHours *float64 `json:"full_day_hours"`
}

func (r CreateShiftPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftType) {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "shift type is required"})
	}
	if _, ok := validator.ParseClock(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "checkin", Message: "must be HH:MM:SS"})
	}
	if _, ok := validator.ParseClock(r.CheckOut); !ok {
		errs = append(errs, validator.ValidationError{Field: "checkout", Message: "must be HH:MM:SS"})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request into a ShiftPolicy.
func (r CreateShiftPolicyRequest) ToEntity(companyID string) ShiftPolicy {
	checkIn, _ := validator.ParseClock(r.CheckIn)
	checkOut, _ := validator.ParseClock(r.CheckOut)

	policy := ShiftPolicy{
		CompanyID: companyID,
		ShiftType: r.ShiftType,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}
	if r.GraceMinutes != nil {
		d := time.Duration(*r.GraceMinutes) * time.Minute
		policy.GracePeriod = &d
	}
	if r.HalfDayHours != nil {
		d := time.Duration(float64(time.Hour) * *r.HalfDayHours)
		policy.HalfDay = &d
	}
	if r.FullDayHours != nil {
		d := time.Duration(float64(time.Hour) * *r.FullDayHours)
		policy.FullDay = &d
	}
	return policy
}

type ShiftPolicyResponse struct {
	ID           string  `json:"id"`
	ShiftType    string  `json:"shift_type"`
	CheckIn      string  `json:"checkin"`
	CheckOut     string  `json:"checkout"`
	GraceMinutes int     `json:"grace_minutes"`
	HalfDayHours float64 `json:"half_day_hours"`
	FullDayHours float64 `json:"full_day_hours"`
	Overnight    bool    `json:"overnight"`
}

func ToResponse(p ShiftPolicy) ShiftPolicyResponse {
	return ShiftPolicyResponse{
		ID:           p.ID,
		ShiftType:    p.ShiftType,
		CheckIn:      p.CheckIn.Format("15:04:05"),
		CheckOut:     p.CheckOut.Format("15:04:05"),
		GraceMinutes: int(p.Grace().Minutes()),
		HalfDayHours: p.HalfDayHours(),
		FullDayHours: p.FullDayHours(),
		Overnight:    p.IsOvernight(),
	}
}

type UpsertWorkingDaysRequest struct {
	DepartmentID     string `json:"department_id"`
	WeekStartDay     string `json:"week_start_day"`
	WeekEndDay       string `json:"week_end_day"`
	WorkingDaysCount int    `json:"working_days_count"`
}

func (r UpsertWorkingDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department id is required"})
	}
	if _, ok := ParseWeekday(r.WeekStartDay); !ok {
		errs = append(errs, validator.ValidationError{Field: "week_start_day", Message: "must be a weekday name"})
	}
	if _, ok := ParseWeekday(r.WeekEndDay); !ok {
		errs = append(errs, validator.ValidationError{Field: "week_end_day", Message: "must be a weekday name"})
	}
	if r.WorkingDaysCount < 0 || r.WorkingDaysCount > 31 {
		errs = append(errs, validator.ValidationError{Field: "working_days_count", Message: "must be between 0 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpsertWorkingDaysRequest) ToEntity(companyID string) DepartmentWorkingDays {
	return DepartmentWorkingDays{
		CompanyID:        companyID,
		DepartmentID:     r.DepartmentID,
		WeekStartDay:     r.WeekStartDay,
		WeekEndDay:       r.WeekEndDay,
		WorkingDaysCount: r.WorkingDaysCount,
	}
}

type WorkingDaysResponse struct {
	ID               string `json:"id"`
	DepartmentID     string `json:"department_id"`
	WeekStartDay     string `json:"week_start_day"`
	WeekEndDay       string `json:"week_end_day"`
	WorkingDaysCount int    `json:"working_days_count"`
}

func ToWorkingDaysResponse(cfg DepartmentWorkingDays) WorkingDaysResponse {
	return WorkingDaysResponse{
		ID:               cfg.ID,
		DepartmentID:     cfg.DepartmentID,
		WeekStartDay:     cfg.WeekStartDay,
		WeekEndDay:       cfg.WeekEndDay,
		WorkingDaysCount: cfg.WorkingDaysCount,
	}
}
