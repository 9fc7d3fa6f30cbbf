package shift

import "time"

// Shift is one scheduled work period for one agent. StartAt and EndAt are
// full instants; EndAt may fall on the next calendar date (overnight shift)
// and is always strictly after StartAt.
type Shift struct {
	ID        string
	AgentID   string
	StartAt   time.Time
	EndAt     time.Time
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	AgentName *string
}

// DurationHours returns the scheduled length of the shift in hours.
func (s Shift) DurationHours() float64 {
	return s.EndAt.Sub(s.StartAt).Hours()
}

// StartDate returns the shift's nominal calendar date (date of StartAt),
// truncated to midnight in StartAt's location.
func (s Shift) StartDate() time.Time {
	y, m, d := s.StartAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.StartAt.Location())
}

// EndDate returns the calendar date of EndAt truncated to midnight.
func (s Shift) EndDate() time.Time {
	y, m, d := s.EndAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.EndAt.Location())
}

// IsOvernight reports whether the shift crosses midnight.
func (s Shift) IsOvernight() bool {
	return !s.StartDate().Equal(s.EndDate())
}
