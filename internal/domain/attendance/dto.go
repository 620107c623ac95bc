package attendance

// DayStatus classifies a single employee-day.
type DayStatus string

const (
	StatusPresent DayStatus = "Present"
	StatusHalfDay DayStatus = "Half Day"
	StatusAbsent  DayStatus = "Absent"
	StatusLeave   DayStatus = "Leave"
	StatusHoliday DayStatus = "Holiday"
)

// DailyRecord is the classified output for one employee-day.
type DailyRecord struct {
	Date                  string    `json:"date"`
	DayName               string    `json:"day_name"`
	Status                DayStatus `json:"status"`
	CheckIn               *string   `json:"check_in"`
	CheckOut              *string   `json:"check_out"`
	WorkedHours           float64   `json:"worked_hours"`
	ScheduledHours        float64   `json:"scheduled_hours"`
	BreakTimeHours        float64   `json:"break_time_hours"`
	OvertimeHours         float64   `json:"overtime_hours"`
	IsLate                bool      `json:"is_late"`
	LateByMinutes         int       `json:"late_by_minutes"`
	EarlyDeparture        bool      `json:"early_departure"`
	EarlyDepartureMinutes int       `json:"early_departure_minutes"`
	LeaveType             string    `json:"leave_type,omitempty"`
	HalfDay               bool      `json:"half_day"`
	Remarks               string    `json:"remarks,omitempty"`
	ShiftType             string    `json:"shift_type,omitempty"`
	IsHoliday             bool      `json:"is_holiday"`
	HolidayName           string    `json:"holiday_name,omitempty"`
}

// MonthlyStats is the per-employee rollup over one calendar month. Half days
// count as 0.5 present. All ratio fields resolve to 0 (or 100 for the
// punctuality score) when the denominator is zero.
type MonthlyStats struct {
	TotalWorkingDays     int            `json:"total_working_days"`
	TotalPresentDays     float64        `json:"total_present_days"`
	TotalAbsentDays      float64        `json:"total_absent_days"`
	TotalLeaveDays       int            `json:"total_leave_days"`
	LeaveSummary         map[string]int `json:"leave_summary"`
	TotalHalfDays        int            `json:"total_half_days"`
	TotalLateDays        int            `json:"total_late_days"`
	TotalHolidays        int            `json:"total_holidays"`
	TotalWorkedHours     float64        `json:"total_worked_hours"`
	TotalExpectedHours   float64        `json:"total_expected_hours"`
	TotalOvertimeHours   float64        `json:"total_overtime_hours"`
	TotalBreakTimeHours  float64        `json:"total_break_time_hours"`
	HoursVariance        float64        `json:"hours_variance"`
	AttendancePercentage float64        `json:"attendance_percentage"`
	HoursEfficiency      float64        `json:"hours_efficiency"`
	PunctualityScore     float64        `json:"punctuality_score"`
}

// MonthlyReport is one employee's month of daily records plus the rollup.
type MonthlyReport struct {
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Daily        []DailyRecord `json:"daily_attendance"`
	Stats        MonthlyStats  `json:"summary"`
}

type CheckInResponse struct {
	AttendanceID string `json:"attendance_id"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	ShiftType    string `json:"shift_type"`
	IsLate       bool   `json:"is_late"`
}

type CheckOutResponse struct {
	AttendanceID  string  `json:"attendance_id"`
	Date          string  `json:"date"`
	CheckOut      string  `json:"check_out"`
	WorkedHours   float64 `json:"worked_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}
