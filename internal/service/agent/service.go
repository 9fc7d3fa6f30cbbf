package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type AgentServiceImpl struct {
	db *database.DB
	agent.AgentRepository
}

func NewAgentService(db *database.DB, agentRepo agent.AgentRepository) agent.AgentService {
	return &AgentServiceImpl{
		db:              db,
		AgentRepository: agentRepo,
	}
}

// CreateAgent implements agent.AgentService.
func (s *AgentServiceImpl) CreateAgent(ctx context.Context, req agent.CreateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	existing, err := s.AgentRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return agent.AgentResponse{}, fmt.Errorf("failed to look up username: %w", err)
	}
	if existing != nil {
		return agent.AgentResponse{}, agent.ErrUsernameExists
	}

	created, err := s.AgentRepository.Create(ctx, agent.Agent{
		ID:       uuid.NewString(),
		Username: req.Username,
		FullName: req.FullName,
		IsActive: true,
	})
	if err != nil {
		return agent.AgentResponse{}, fmt.Errorf("failed to create agent: %w", err)
	}

	return agent.NewAgentResponse(created), nil
}

// ListAgents implements agent.AgentService.
func (s *AgentServiceImpl) ListAgents(ctx context.Context) (agent.ListAgentsResponse, error) {
	agents, err := s.AgentRepository.ListActive(ctx)
	if err != nil {
		return agent.ListAgentsResponse{}, fmt.Errorf("failed to list agents: %w", err)
	}

	resp := agent.ListAgentsResponse{
		Agents: make([]agent.AgentResponse, 0, len(agents)),
		Total:  len(agents),
	}
	for _, a := range agents {
		resp.Agents = append(resp.Agents, agent.NewAgentResponse(a))
	}
	return resp, nil
}
