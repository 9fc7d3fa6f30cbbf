package agent

import "time"

// Agent is one tracked worker.
type Agent struct {
	ID        string
	Username  string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
