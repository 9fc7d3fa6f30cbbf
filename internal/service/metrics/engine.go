package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
)

// associationWindow is the lookback used both for punch-in anchoring and
// for the shift-start fallback when matching an event to its shift.
const associationWindow = 24 * time.Hour

// Engine turns shift, break/attendance-event and off-day collections for
// one agent into a metrics Result. It owns no state between calls and is
// safe to invoke concurrently for different agents or ranges.
type Engine struct {
	policy metrics.Policy
}

func NewEngine(policy metrics.Policy) *Engine {
	return &Engine{policy: policy}
}

// ComputeInput carries the already-fetched collections for one agent.
// Events are expected to cover the request range padded by one day on each
// side so overnight spillover can be regrouped onto its shift.
type ComputeInput struct {
	From    time.Time // inclusive, date precision
	To      time.Time // inclusive, date precision
	Shifts  []shift.Shift
	Events  []tracking.BreakRecord
	OffDays []offday.OffDay
}

// Compute derives the metrics Result for the input. Only a structurally
// invalid range is an error; missing shifts or events yield the documented
// zero/default values.
func (e *Engine) Compute(in ComputeInput) (metrics.Result, error) {
	from := truncateToDay(in.From)
	to := truncateToDay(in.To)
	if to.Before(from) {
		return metrics.Result{}, metrics.ErrInvalidRange
	}

	offDates := make(map[string]bool, len(in.OffDays))
	for _, o := range in.OffDays {
		offDates[dateKey(o.Date)] = true
	}

	// Off-day shifts carry no scheduling expectation. Sorting by start
	// instant keeps association ties deterministic.
	shifts := make([]shift.Shift, 0, len(in.Shifts))
	for _, s := range in.Shifts {
		if offDates[dateKey(s.StartAt)] {
			continue
		}
		shifts = append(shifts, s)
	}
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].StartAt.Before(shifts[j].StartAt)
	})

	punchIns := make([]tracking.BreakRecord, 0)
	for _, ev := range in.Events {
		if ev.Type == tracking.TypePunchIn {
			punchIns = append(punchIns, ev)
		}
	}
	sort.Slice(punchIns, func(i, j int) bool {
		return punchIns[i].StartAt.Before(punchIns[j].StartAt)
	})

	// Bucket events by owning shift. An event with no owner is still part
	// of raw totals when its own date lies inside the requested range.
	type scopedEvent struct {
		record     tracking.BreakRecord
		shiftIndex int // -1 when unassociated
	}
	scoped := make([]scopedEvent, 0, len(in.Events))
	for _, ev := range in.Events {
		idx := e.associate(ev, shifts, punchIns)
		if idx < 0 {
			day := truncateToDay(ev.StartAt)
			if day.Before(from) || day.After(to) {
				continue
			}
		}
		scoped = append(scoped, scopedEvent{record: ev, shiftIndex: idx})
	}

	result := metrics.Result{
		BreakCounts: make(map[string]int),
		ShiftsCount: len(shifts),
	}

	var scheduledHours float64
	for _, s := range shifts {
		scheduledHours += s.DurationHours()
	}
	result.TotalScheduledHours = round2(scheduledHours)

	var (
		scores              []float64
		compensationMinutes int
		punchInsByShift     = make(map[int]tracking.BreakRecord)
		punchOutsByShift    = make(map[int]tracking.BreakRecord)
	)

	for _, se := range scoped {
		ev := se.record

		if ev.Type.IsAttendance() {
			if se.shiftIndex < 0 {
				continue
			}
			switch ev.Type {
			case tracking.TypePunchIn:
				// earliest punch-in bounds the shift
				if cur, ok := punchInsByShift[se.shiftIndex]; !ok || ev.StartAt.Before(cur.StartAt) {
					punchInsByShift[se.shiftIndex] = ev
				}
			case tracking.TypePunchOut:
				// latest punch-out bounds the shift
				if cur, ok := punchOutsByShift[se.shiftIndex]; !ok || ev.StartAt.After(cur.StartAt) {
					punchOutsByShift[se.shiftIndex] = ev
				}
			}
			continue
		}

		result.TotalBreaks++
		result.BreakCounts[string(ev.Type)]++

		duration, completed := ev.Duration()
		if completed {
			result.CompletedBreaks++
		}

		if e.policy.IsWorkingTime(ev.Type) {
			switch ev.Type {
			case tracking.TypeOvertime:
				result.OvertimeCount++
				if completed {
					result.OvertimeMinutes += duration
				}
			case tracking.TypeCompensation:
				if completed {
					compensationMinutes += duration
				}
			}
			continue
		}

		// Regular break: draws down the allowance and can go overdue.
		if ev.Type == tracking.TypeEmergency {
			result.EmergencyCount++
		}
		if !completed {
			// Active breaks are visible in counts but never in duration
			// sums, and are not overdue until closed.
			continue
		}

		allowed := e.policy.AllowedDuration(ev.Type)
		result.TotalBreakMinutes += duration
		result.TotalAllowedBreakMinutes += allowed
		if duration > allowed {
			result.Incidents++
		}
		if allowed > 0 {
			scores = append(scores, breakScore(duration, allowed))
		}
	}

	// Punch adherence: each shift expects one punch-in against its start
	// and one punch-out against its end. A punch that never happened
	// scores zero.
	for i, s := range shifts {
		if ev, ok := punchInsByShift[i]; ok {
			scores = append(scores, e.punchScore(ev.StartAt, s.StartAt))
		} else {
			scores = append(scores, 0)
		}
		if ev, ok := punchOutsByShift[i]; ok {
			scores = append(scores, e.punchScore(ev.StartAt, s.EndAt))
		} else {
			scores = append(scores, 0)
		}
	}

	result.ExceedingBreakMinutes = result.TotalBreakMinutes - result.TotalAllowedBreakMinutes
	if result.ExceedingBreakMinutes < 0 {
		result.ExceedingBreakMinutes = 0
	}

	result.Utilization = round1(e.utilization(len(shifts), result.TotalBreakMinutes))
	result.Conformance = round1(e.conformance(len(shifts), result.TotalBreakMinutes, compensationMinutes))
	result.Adherence = round1(mean(scores, 100))

	return result, nil
}

// associate finds the shift owning an event, preferring temporal proximity
// to a punch-in over nominal calendar containment. Returns -1 when no
// shift matches. punchIns must be sorted by start instant ascending.
func (e *Engine) associate(ev tracking.BreakRecord, shifts []shift.Shift, punchIns []tracking.BreakRecord) int {
	// Most recent punch-in at or before the event, within the lookback.
	var anchor *tracking.BreakRecord
	for i := len(punchIns) - 1; i >= 0; i-- {
		p := punchIns[i]
		if p.StartAt.After(ev.StartAt) {
			continue
		}
		if ev.StartAt.Sub(p.StartAt) > associationWindow {
			break
		}
		anchor = &punchIns[i]
		break
	}

	if anchor != nil {
		anchorDay := truncateToDay(anchor.StartAt)
		for i, s := range shifts {
			if containsDate(s, anchorDay) {
				return i
			}
		}
	}

	// No usable anchor: fall back to calendar containment plus a shift
	// start within the lookback before the event.
	day := truncateToDay(ev.StartAt)
	for i, s := range shifts {
		if !containsDate(s, day) {
			continue
		}
		lead := ev.StartAt.Sub(s.StartAt)
		if lead >= 0 && lead <= associationWindow {
			return i
		}
	}
	return -1
}

// utilization is the fraction of nominal working time not consumed by
// excess regular-break time, 0-100.
func (e *Engine) utilization(shiftCount, regularBreakMinutes int) float64 {
	if shiftCount == 0 {
		return 0
	}
	expectedWork := float64(shiftCount * e.policy.NominalShiftMinutes)
	expectedBreak := float64(shiftCount * e.policy.AllowedBreakMinutes)
	excess := math.Max(0, float64(regularBreakMinutes)-expectedBreak)
	return clamp((expectedWork-excess)/expectedWork*100, 0, 100)
}

// conformance is utilization with completed compensation time credited
// back, 0-100.
func (e *Engine) conformance(shiftCount, regularBreakMinutes, compensationMinutes int) float64 {
	if shiftCount == 0 {
		return 0
	}
	expectedWork := float64(shiftCount * e.policy.NominalShiftMinutes)
	expectedBreak := float64(shiftCount * e.policy.AllowedBreakMinutes)
	excess := math.Max(0, float64(regularBreakMinutes)-expectedBreak)
	actualWork := expectedWork - excess + float64(compensationMinutes)
	return clamp(actualWork/expectedWork*100, 0, 100)
}

// punchScore grades one punch against its scheduled instant: full marks
// inside the grace window, then a linear falloff reaching zero at the
// limit.
func (e *Engine) punchScore(actual, scheduled time.Time) float64 {
	diff := math.Abs(actual.Sub(scheduled).Minutes())
	if diff <= float64(e.policy.PunchGraceMinutes) {
		return 100
	}
	limit := float64(e.policy.PunchLimitMinutes)
	return math.Max(0, (limit-diff)/limit*100)
}

// breakScore grades one completed regular break against its allowance.
func breakScore(actual, allowed int) float64 {
	if actual <= allowed {
		return 100
	}
	return float64(allowed) / float64(actual) * 100
}

func containsDate(s shift.Shift, day time.Time) bool {
	return !day.Before(s.StartDate()) && !day.After(s.EndDate())
}

func mean(values []float64, empty float64) float64 {
	if len(values) == 0 {
		return empty
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
