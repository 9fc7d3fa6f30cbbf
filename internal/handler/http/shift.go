package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/handler/http/response"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateBulk(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create shift request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift saved", result)
}

// CreateBulk implements ShiftHandler.
func (h *shiftHandlerImpl) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var req shift.BulkShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bulk shift request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateBulkShifts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shifts saved", result)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	filter := shift.ShiftFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}
	if agentID := r.URL.Query().Get("agent_id"); agentID != "" {
		filter.AgentID = &agentID
	}

	result, err := h.shiftService.ListShifts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.shiftService.DeleteShift(r.Context(), shiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// parseDateRange reads start_date/end_date query params, both defaulting
// to today, and reports an error response when a value is malformed.
func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	today := time.Now().UTC().Format("2006-01-02")

	startStr := r.URL.Query().Get("start_date")
	if startStr == "" {
		startStr = today
	}
	endStr := r.URL.Query().Get("end_date")
	if endStr == "" {
		endStr = startStr
	}

	startDate, ok := validator.IsValidDate(startStr)
	if !ok {
		response.BadRequest(w, "invalid start_date parameter", nil)
		return time.Time{}, time.Time{}, false
	}
	endDate, ok := validator.IsValidDate(endStr)
	if !ok {
		response.BadRequest(w, "invalid end_date parameter", nil)
		return time.Time{}, time.Time{}, false
	}
	if endDate.Before(startDate) {
		response.BadRequest(w, "end_date must not be before start_date", nil)
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}
