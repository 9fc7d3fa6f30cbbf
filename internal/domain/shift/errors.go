package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound  = errors.New("shift not found")
	ErrAgentNotFound  = errors.New("agent not found")
	ErrInvalidShift   = errors.New("shift end must be after shift start")
	ErrNoAgentsInBulk = errors.New("no valid agents in bulk request")
)
