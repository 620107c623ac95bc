package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/attendance"
	"github.com/innovyx-tech/hrms-backend-go/internal/handler/http/response"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	MonthlyLog(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// parsePeriod reads the requested month and year from the query string. Both
// ?month=8&year=2026 and ?period=2026-08 are accepted; the current month is
// the default when neither is present.
func parsePeriod(r *http.Request) (month, year int, ok bool) {
	q := r.URL.Query()

	if period := q.Get("period"); period != "" {
		parts := strings.SplitN(period, "-", 2)
		if len(parts) != 2 {
			return 0, 0, false
		}
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || !validator.IsValidMonthYear(m, y) {
			return 0, 0, false
		}
		return m, y, true
	}

	monthStr, yearStr := q.Get("month"), q.Get("year")
	if monthStr == "" && yearStr == "" {
		now := time.Now()
		return int(now.Month()), now.Year(), true
	}

	m, errM := strconv.Atoi(monthStr)
	y, errY := strconv.Atoi(yearStr)
	if errM != nil || errY != nil || !validator.IsValidMonthYear(m, y) {
		return 0, 0, false
	}
	return m, y, true
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", result)
}

func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", result)
}

func (h *attendanceHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.RecomputeWorkDuration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work duration recomputed", nil)
}

func (h *attendanceHandlerImpl) MonthlyLog(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	result, err := h.attendanceService.MonthlyLog(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	result, err := h.attendanceService.History(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
