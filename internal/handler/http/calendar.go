package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/holiday"
	"github.com/innovyx-tech/hrms-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService holiday.CalendarService
}

func NewCalendarHandler(calendarService holiday.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

func (h *calendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateCalendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.CreateEvent(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar event created", result)
}

func (h *calendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.ListEvents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.calendarService.DeleteEvent(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar event deleted", nil)
}
