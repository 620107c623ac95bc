package attendance

import "context"

// AttendanceService is the engine's attendance surface. Company and employee
// identity come from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn opens today's attendance for the calling employee, selecting
	// the applicable shift and flagging lateness against the grace period.
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut closes today's open attendance and recomputes the work
	// duration with closed breaks subtracted.
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// RecomputeWorkDuration re-derives total work and overtime durations for
	// one attendance row from its punches and closed breaks.
	RecomputeWorkDuration(ctx context.Context, attendanceID string) error

	// MonthlyLog builds the company-wide month view: one MonthlyReport per
	// employee with gap-filled absents, holiday and leave overlays, and the
	// statistics rollup.
	MonthlyLog(ctx context.Context, month, year int) ([]MonthlyReport, error)

	// History builds the calling employee's own MonthlyReport.
	History(ctx context.Context, month, year int) (MonthlyReport, error)
}
