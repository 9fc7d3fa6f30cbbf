package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/handler/http/response"
)

type MetricsHandler interface {
	GetAgentMetrics(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
}

type metricsHandlerImpl struct {
	metricsService metrics.MetricsService
}

func NewMetricsHandler(metricsService metrics.MetricsService) MetricsHandler {
	return &metricsHandlerImpl{
		metricsService: metricsService,
	}
}

// GetAgentMetrics handles GET /metrics/agents/{agentID}
func (h *metricsHandlerImpl) GetAgentMetrics(w http.ResponseWriter, r *http.Request) {
	req := metrics.AgentMetricsRequest{
		AgentID:   chi.URLParam(r, "agentID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.metricsService.GetAgentMetrics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetReport handles GET /metrics/report
func (h *metricsHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	req := metrics.ReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.metricsService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
