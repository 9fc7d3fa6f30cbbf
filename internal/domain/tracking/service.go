package tracking

import (
	"context"
)

// BreakService defines business logic for break and attendance tracking.
type BreakService interface {
	// StartBreak opens a new break for the agent. Punch markers
	// (punch_in/punch_out) are recorded as closed zero-duration events.
	StartBreak(ctx context.Context, req StartBreakRequest) (BreakResponse, error)

	// EndBreak closes the agent's active break, deriving its duration
	// and overdue flag.
	EndBreak(ctx context.Context, req EndBreakRequest) (BreakResponse, error)

	// UpdateNotes replaces the free-text notes on a break record.
	UpdateNotes(ctx context.Context, req UpdateNotesRequest) (BreakResponse, error)

	// ListBreaks retrieves break records with filters.
	ListBreaks(ctx context.Context, filter BreakFilter) (ListBreaksResponse, error)

	// GetActiveBreaks retrieves every break currently in progress.
	GetActiveBreaks(ctx context.Context) (ListBreaksResponse, error)
}
