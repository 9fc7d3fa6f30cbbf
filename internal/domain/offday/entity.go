package offday

import "time"

// OffDay excludes one agent from scheduling expectations on one calendar date.
type OffDay struct {
	ID        string
	AgentID   string
	Date      time.Time // midnight-truncated
	Reason    string
	CreatedAt time.Time
}
