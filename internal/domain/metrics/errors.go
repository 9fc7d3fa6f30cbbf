package metrics

import "errors"

// Metrics domain errors. "No data" conditions are never errors: the engine
// returns well-defined zero/default values for them.
var (
	ErrInvalidRange  = errors.New("end date must not be before start date")
	ErrAgentNotFound = errors.New("agent not found")
)
