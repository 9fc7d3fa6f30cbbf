package tracking

import "errors"

// Tracking domain errors
var (
	ErrActiveBreakExists = errors.New("agent already has an active break")
	ErrNoActiveBreak     = errors.New("agent has no active break to end")
	ErrBreakNotFound     = errors.New("break record not found")
	ErrUnknownBreakType  = errors.New("unknown break type")
)
