package tracking

import (
	"time"
)

// BreakRecord is one typed interval event for one agent: a punch marker,
// a regular break, or a working-time break.
type BreakRecord struct {
	ID              string
	AgentID         string
	Type            BreakType
	StartAt         time.Time
	EndAt           *time.Time // nil while the break is still active
	DurationMinutes *int       // derived on close, nil while active
	IsOverdue       bool
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	AgentName *string
}

// IsActive reports whether the break has not been closed yet.
func (b BreakRecord) IsActive() bool {
	return b.EndAt == nil
}

// Duration returns the derived duration and whether it is available.
// Active records have no duration.
func (b BreakRecord) Duration() (int, bool) {
	if b.DurationMinutes == nil {
		return 0, false
	}
	return *b.DurationMinutes, true
}
