package tracking

import (
	"context"
	"time"
)

// BreakRepository defines data access methods for break and attendance records.
type BreakRepository interface {
	// Create inserts a new break record.
	Create(ctx context.Context, record BreakRecord) (BreakRecord, error)

	// GetByID retrieves a break record by ID.
	GetByID(ctx context.Context, id string) (BreakRecord, error)

	// GetActiveByAgent retrieves the agent's open break, if any.
	// Used to prevent two simultaneous active breaks.
	GetActiveByAgent(ctx context.Context, agentID string) (*BreakRecord, error)

	// ListActive returns every open break across all agents, ordered by
	// start instant ascending.
	ListActive(ctx context.Context) ([]BreakRecord, error)

	// Update persists changes to an existing record (close, notes).
	Update(ctx context.Context, record BreakRecord) error

	// ListByAgentAndRange returns the agent's records whose start instant
	// falls within [from, to), ordered by start instant ascending.
	ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]BreakRecord, error)

	// ListByRange returns all records in [from, to) with optional agent and
	// type filters, ordered by start instant descending.
	ListByRange(ctx context.Context, filter BreakFilter) ([]BreakRecord, error)
}
