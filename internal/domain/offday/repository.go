package offday

import (
	"context"
	"time"
)

// OffDayRepository defines data access methods for off-days.
type OffDayRepository interface {
	// Create inserts a new off-day.
	Create(ctx context.Context, o OffDay) (OffDay, error)

	// ListByAgentAndRange returns the agent's off-days within [from, to]
	// inclusive, ordered by date.
	ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]OffDay, error)

	// List returns off-days for a range across all agents.
	List(ctx context.Context, from, to time.Time) ([]OffDay, error)

	// Delete removes an off-day.
	Delete(ctx context.Context, id string) error
}
