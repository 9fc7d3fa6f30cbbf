package tracking

// BreakType identifies one attendance or break event category.
type BreakType string

const (
	// Attendance markers. Instantaneous: start == end, duration 0.
	TypePunchIn  BreakType = "punch_in"
	TypePunchOut BreakType = "punch_out"

	// Regular breaks. Draw down the break allowance and can go overdue.
	TypeShort     BreakType = "short"
	TypeLunch     BreakType = "lunch"
	TypeMeeting   BreakType = "meeting"
	TypeHuddle    BreakType = "huddle"
	TypeEmergency BreakType = "emergency"

	// Working-time breaks. Count as productive time, never overdue.
	TypeCoaching          BreakType = "coaching"
	TypeTeamLeaderMeeting BreakType = "team_leader_meeting"
	TypeOvertime          BreakType = "overtime"

	// Compensation is working time credited back in conformance.
	TypeCompensation BreakType = "compensation"
)

// Class partitions event types by how the metrics math treats them.
type Class int

const (
	ClassAttendance Class = iota
	ClassRegular
	ClassWorkingTime
)

// classes is the single classification table for every known type.
// Adding a category is a one-row edit here plus a default allowance below.
var classes = map[BreakType]Class{
	TypePunchIn:           ClassAttendance,
	TypePunchOut:          ClassAttendance,
	TypeShort:             ClassRegular,
	TypeLunch:             ClassRegular,
	TypeMeeting:           ClassRegular,
	TypeHuddle:            ClassRegular,
	TypeEmergency:         ClassRegular,
	TypeCoaching:          ClassWorkingTime,
	TypeTeamLeaderMeeting: ClassWorkingTime,
	TypeOvertime:          ClassWorkingTime,
	TypeCompensation:      ClassWorkingTime,
}

// DefaultAllowedDurations maps each regular break type to its allowed
// duration in minutes. Deployments may override via configuration.
var DefaultAllowedDurations = map[BreakType]int{
	TypeShort:     15,
	TypeLunch:     30,
	TypeMeeting:   60,
	TypeHuddle:    15,
	TypeEmergency: 10,
}

// IsValid reports whether t is a known event type.
func (t BreakType) IsValid() bool {
	_, ok := classes[t]
	return ok
}

// Classify returns the class of t. Unknown types classify as regular so a
// misconfigured category is visible in totals rather than silently dropped;
// callers should reject unknown types at the boundary via IsValid.
func (t BreakType) Classify() Class {
	if c, ok := classes[t]; ok {
		return c
	}
	return ClassRegular
}

// IsAttendance reports whether t is a punch marker.
func (t BreakType) IsAttendance() bool {
	return t.Classify() == ClassAttendance
}

// KnownTypes returns every valid type tag, for validation messages.
func KnownTypes() []string {
	out := make([]string, 0, len(classes))
	for t := range classes {
		out = append(out, string(t))
	}
	return out
}
