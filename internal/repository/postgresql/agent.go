package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type agentRepository struct {
	db *database.DB
}

func NewAgentRepository(db *database.DB) agent.AgentRepository {
	return &agentRepository{db: db}
}

// Create implements agent.AgentRepository.
func (r *agentRepository) Create(ctx context.Context, newAgent agent.Agent) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agents (id, username, full_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAgent.ID,
		newAgent.Username,
		newAgent.FullName,
		newAgent.IsActive,
	).Scan(&newAgent.CreatedAt, &newAgent.UpdatedAt)

	if err != nil {
		return agent.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}

	return newAgent, nil
}

// GetByID implements agent.AgentRepository.
func (r *agentRepository) GetByID(ctx context.Context, id string) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, full_name, is_active, created_at, updated_at
		FROM agents
		WHERE id = $1
	`

	var a agent.Agent
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Username, &a.FullName, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}

	return a, nil
}

// GetByUsername implements agent.AgentRepository.
func (r *agentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, full_name, is_active, created_at, updated_at
		FROM agents
		WHERE username = $1
	`

	var a agent.Agent
	err := q.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.FullName, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by username: %w", err)
	}

	return &a, nil
}

// ListActive implements agent.AgentRepository.
func (r *agentRepository) ListActive(ctx context.Context) ([]agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, full_name, is_active, created_at, updated_at
		FROM agents
		WHERE is_active
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []agent.Agent
	for rows.Next() {
		var a agent.Agent
		if err := rows.Scan(&a.ID, &a.Username, &a.FullName, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agents: %w", err)
	}

	return agents, nil
}
