package metrics

import (
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
)

// Policy carries the deployment-level constants the metric formulas depend
// on. It is injected into the engine as a value so historical reports stay
// reproducible if a deployment retunes its numbers.
type Policy struct {
	// NominalShiftMinutes is the expected working window per shift.
	NominalShiftMinutes int

	// AllowedBreakMinutes is the break allowance per shift used by the
	// utilization and conformance formulas (60 or 75 depending on
	// deployment).
	AllowedBreakMinutes int

	// AllowedDurations maps each regular break type to its allowed
	// duration in minutes.
	AllowedDurations map[tracking.BreakType]int

	// WorkingTimeTypes are the break types that count as productive time:
	// they never go overdue and never draw down the break allowance.
	WorkingTimeTypes map[tracking.BreakType]bool

	// PunchGraceMinutes is the window around the scheduled instant within
	// which a punch still scores 100.
	PunchGraceMinutes int

	// PunchLimitMinutes is the offset at which a punch score reaches 0.
	PunchLimitMinutes int
}

// DefaultPolicy returns the stock deployment configuration.
func DefaultPolicy() Policy {
	allowed := make(map[tracking.BreakType]int, len(tracking.DefaultAllowedDurations))
	for t, minutes := range tracking.DefaultAllowedDurations {
		allowed[t] = minutes
	}
	return Policy{
		NominalShiftMinutes: 480,
		AllowedBreakMinutes: 60,
		AllowedDurations:    allowed,
		WorkingTimeTypes: map[tracking.BreakType]bool{
			tracking.TypeCoaching:          true,
			tracking.TypeTeamLeaderMeeting: true,
			tracking.TypeOvertime:          true,
			tracking.TypeCompensation:      true,
		},
		PunchGraceMinutes: 5,
		PunchLimitMinutes: 30,
	}
}

// AllowedDuration returns the allowed minutes for a break type, falling
// back to the classification table defaults for types the policy does not
// override. Working-time types have no allowance.
func (p Policy) AllowedDuration(t tracking.BreakType) int {
	if minutes, ok := p.AllowedDurations[t]; ok {
		return minutes
	}
	if minutes, ok := tracking.DefaultAllowedDurations[t]; ok {
		return minutes
	}
	return 0
}

// IsWorkingTime reports whether the type counts as productive time under
// this policy. A non-nil WorkingTimeTypes set fully replaces the
// classification defaults so removing a category is possible.
func (p Policy) IsWorkingTime(t tracking.BreakType) bool {
	if p.WorkingTimeTypes != nil {
		return p.WorkingTimeTypes[t]
	}
	return t.Classify() == tracking.ClassWorkingTime
}
