package agent

import "context"

// AgentRepository defines data access methods for agents.
type AgentRepository interface {
	// Create inserts a new agent.
	Create(ctx context.Context, a Agent) (Agent, error)

	// GetByID retrieves an agent by ID.
	GetByID(ctx context.Context, id string) (Agent, error)

	// GetByUsername retrieves an agent by username.
	GetByUsername(ctx context.Context, username string) (*Agent, error)

	// ListActive returns active agents ordered by full name.
	ListActive(ctx context.Context) ([]Agent, error)
}

// AgentService defines business logic for agent management.
type AgentService interface {
	CreateAgent(ctx context.Context, req CreateAgentRequest) (AgentResponse, error)
	ListAgents(ctx context.Context) (ListAgentsResponse, error)
}
