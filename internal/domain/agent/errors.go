package agent

import "errors"

// Agent domain errors
var (
	ErrAgentNotFound  = errors.New("agent not found")
	ErrUsernameExists = errors.New("username already exists")
)
