package shift

import "context"

// ShiftService defines business logic for shift scheduling.
type ShiftService interface {
	// CreateShift creates the agent's shift for a date, or updates the
	// existing one (one shift per agent per start date).
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// CreateBulkShifts applies the same shift window to many agents.
	// Unknown agents are skipped and reported in the response.
	CreateBulkShifts(ctx context.Context, req BulkShiftRequest) (BulkShiftResponse, error)

	// ListShifts retrieves shifts for a date range.
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftsResponse, error)

	// DeleteShift removes a shift.
	DeleteShift(ctx context.Context, id string) error
}
