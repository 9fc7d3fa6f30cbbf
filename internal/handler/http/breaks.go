package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/rta-tracker/rta-backend-go/internal/handler/http/response"
)

type BreakHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	UpdateNotes(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
}

type breakHandlerImpl struct {
	breakService tracking.BreakService
}

func NewBreakHandler(breakService tracking.BreakService) BreakHandler {
	return &breakHandlerImpl{
		breakService: breakService,
	}
}

// Start implements BreakHandler.
func (h *breakHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req tracking.StartBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode start break request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.breakService.StartBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break started", result)
}

// End implements BreakHandler.
func (h *breakHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	var req tracking.EndBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode end break request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.breakService.EndBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// UpdateNotes implements BreakHandler.
func (h *breakHandlerImpl) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req tracking.UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update notes request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.BreakID = chi.URLParam(r, "breakID")

	result, err := h.breakService.UpdateNotes(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notes updated", result)
}

// List implements BreakHandler.
func (h *breakHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	filter := tracking.BreakFilter{
		From: startDate,
		To:   endDate.AddDate(0, 0, 1), // exclusive upper bound
	}
	if agentID := r.URL.Query().Get("agent_id"); agentID != "" {
		filter.AgentID = &agentID
	}
	if typeStr := r.URL.Query().Get("break_type"); typeStr != "" {
		breakType := tracking.BreakType(typeStr)
		if !breakType.IsValid() {
			response.HandleError(w, tracking.ErrUnknownBreakType)
			return
		}
		filter.BreakType = &breakType
	}

	result, err := h.breakService.ListBreaks(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetActive implements BreakHandler.
func (h *breakHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.breakService.GetActiveBreaks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
