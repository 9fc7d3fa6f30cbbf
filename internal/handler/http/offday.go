package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/handler/http/response"
)

type OffDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type offDayHandlerImpl struct {
	offDayService offday.OffDayService
}

func NewOffDayHandler(offDayService offday.OffDayService) OffDayHandler {
	return &offDayHandlerImpl{
		offDayService: offDayService,
	}
}

// Create implements OffDayHandler.
func (h *offDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req offday.CreateOffDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create off-day request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.offDayService.CreateOffDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Off-day created", result)
}

// List implements OffDayHandler.
func (h *offDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	result, err := h.offDayService.ListOffDays(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements OffDayHandler.
func (h *offDayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	offDayID := chi.URLParam(r, "offDayID")

	if err := h.offDayService.DeleteOffDay(r.Context(), offDayID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Off-day deleted", nil)
}
