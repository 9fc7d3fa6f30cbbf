package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/handler/http/response"
)

type AgentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type agentHandlerImpl struct {
	agentService agent.AgentService
}

func NewAgentHandler(agentService agent.AgentService) AgentHandler {
	return &agentHandlerImpl{
		agentService: agentService,
	}
}

// Create implements AgentHandler.
func (h *agentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req agent.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create agent request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.agentService.CreateAgent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Agent created", result)
}

// List implements AgentHandler.
func (h *agentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.agentService.ListAgents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
