package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shift schedules.
type ShiftRepository interface {
	// Create inserts a new shift.
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift by ID.
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByAgentAndDate retrieves the agent's shift whose start date equals
	// the given calendar date, if any. One shift per agent per start date.
	GetByAgentAndDate(ctx context.Context, agentID string, date time.Time) (*Shift, error)

	// Update persists changes to an existing shift.
	Update(ctx context.Context, s Shift) error

	// ListByAgentAndRange returns the agent's shifts whose start date falls
	// within [from, to] inclusive, ordered by start instant ascending.
	ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]Shift, error)

	// List returns shifts matching the filter, ordered by start instant.
	List(ctx context.Context, filter ShiftFilter) ([]Shift, error)

	// Delete removes a shift.
	Delete(ctx context.Context, id string) error
}
