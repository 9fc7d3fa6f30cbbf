package metrics

import (
	"testing"
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func testShift(start, end time.Time) shift.Shift {
	return shift.Shift{
		ID:      "shift-" + start.Format("2006-01-02T15:04"),
		AgentID: "agent-1",
		StartAt: start,
		EndAt:   end,
	}
}

func closedBreak(breakType tracking.BreakType, start time.Time, minutes int) tracking.BreakRecord {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return tracking.BreakRecord{
		ID:              "break-" + string(breakType) + "-" + start.Format("15:04"),
		AgentID:         "agent-1",
		Type:            breakType,
		StartAt:         start,
		EndAt:           &end,
		DurationMinutes: &minutes,
	}
}

func activeBreak(breakType tracking.BreakType, start time.Time) tracking.BreakRecord {
	return tracking.BreakRecord{
		ID:      "break-active-" + start.Format("15:04"),
		AgentID: "agent-1",
		Type:    breakType,
		StartAt: start,
	}
}

func punch(breakType tracking.BreakType, instant time.Time) tracking.BreakRecord {
	return closedBreak(breakType, instant, 0)
}

// ===== ENGINE TESTS =====

func TestEngine_Compute_OverdueLunch(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	in := ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 35),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	}

	result, err := engine.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ShiftsCount)
	assert.Equal(t, 8.0, result.TotalScheduledHours)
	assert.Equal(t, 35, result.TotalBreakMinutes)
	assert.Equal(t, 30, result.TotalAllowedBreakMinutes)
	assert.Equal(t, 5, result.ExceedingBreakMinutes)
	assert.Equal(t, 1, result.Incidents)
	assert.Equal(t, 1, result.TotalBreaks)
	assert.Equal(t, 1, result.CompletedBreaks)

	// 35 min against a 60 min per-shift allowance leaves no excess.
	assert.Equal(t, 100.0, result.Utilization)
	assert.Equal(t, 100.0, result.Conformance)

	// mean(30/35*100, 100, 100) = 95.238...
	assert.Equal(t, 95.2, result.Adherence)
}

func TestEngine_Compute_PunchScores(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())
	shifts := []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))}

	// 2 min late is inside the 5 min grace window.
	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: shifts,
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 2)),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Adherence)

	// 20 min late scores (30-20)/30*100 = 33.3; mean with the on-time
	// punch-out is 66.666... -> 66.7.
	result, err = engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: shifts,
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 20)),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 66.7, result.Adherence)
}

func TestEngine_Compute_MissingPunchScoresZero(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
		},
	})
	require.NoError(t, err)

	// mean(100 punch-in, 0 missing punch-out)
	assert.Equal(t, 50.0, result.Adherence)
}

func TestEngine_Compute_CleanShift(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Utilization)
	assert.Equal(t, 100.0, result.Conformance)
	assert.Equal(t, 100.0, result.Adherence)
	assert.Equal(t, 0, result.Incidents)
	assert.Equal(t, 0, result.TotalBreaks)
}

func TestEngine_Compute_UtilizationWithExcessBreaks(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	// 90 regular break minutes against a 60 min allowance: excess 30,
	// utilization (480-30)/480*100 = 93.75 -> 93.8.
	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 30),
			closedBreak(tracking.TypeMeeting, at(testDay, 14, 0), 60),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 90, result.TotalBreakMinutes)
	assert.Equal(t, 0, result.Incidents)
	assert.Equal(t, 93.8, result.Utilization)
	assert.Equal(t, 93.8, result.Conformance)
}

func TestEngine_Compute_CompensationCreditsConformanceOnly(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	// Same 30 min excess as above, plus 20 compensated minutes:
	// conformance (480-30+20)/480*100 = 97.9, utilization unchanged.
	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 30),
			closedBreak(tracking.TypeMeeting, at(testDay, 14, 0), 60),
			closedBreak(tracking.TypeCompensation, at(testDay, 17, 0), 20),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 93.8, result.Utilization)
	assert.Equal(t, 97.9, result.Conformance)
	// Compensation never draws down the allowance.
	assert.Equal(t, 90, result.TotalBreakMinutes)
}

func TestEngine_Compute_OvernightShiftGrouping(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())
	nextDay := testDay.AddDate(0, 0, 1)

	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 22, 0), at(nextDay, 6, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 22, 1)),
			// 01:00 the next morning still belongs to the 22:00 shift.
			closedBreak(tracking.TypeShort, at(nextDay, 1, 0), 15),
			punch(tracking.TypePunchOut, at(nextDay, 6, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ShiftsCount)
	assert.Equal(t, 1, result.TotalBreaks)
	assert.Equal(t, 1, result.BreakCounts[string(tracking.TypeShort)])
	assert.Equal(t, 15, result.TotalBreakMinutes)
	assert.Equal(t, 100.0, result.Adherence)
}

func TestEngine_Compute_NoShiftDefaults(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{From: testDay, To: testDay})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Utilization)
	assert.Equal(t, 0.0, result.Conformance)
	assert.Equal(t, 100.0, result.Adherence)
	assert.Equal(t, 0, result.Incidents)
	assert.Equal(t, 0, result.ShiftsCount)
	assert.Equal(t, 0.0, result.TotalScheduledHours)
}

func TestEngine_Compute_WorkingTimeNeverOverdue(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeCoaching, at(testDay, 10, 0), 90),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 45),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	})
	require.NoError(t, err)

	// Only the 45 min lunch against its 30 min allowance is an incident;
	// the 90 min coaching session is productive time.
	assert.Equal(t, 1, result.Incidents)
	assert.Equal(t, 2, result.TotalBreaks)
	assert.Equal(t, 45, result.TotalBreakMinutes)
}

func TestEngine_Compute_ActiveBreakExcludedFromDurations(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			activeBreak(tracking.TypeLunch, at(testDay, 12, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalBreaks)
	assert.Equal(t, 0, result.CompletedBreaks)
	assert.Equal(t, 0, result.TotalBreakMinutes)
	assert.Equal(t, 0, result.Incidents)
}

func TestEngine_Compute_OffDayShiftsExcluded(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	result, err := engine.Compute(ComputeInput{
		From:    testDay,
		To:      testDay,
		Shifts:  []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		OffDays: []offday.OffDay{{AgentID: "agent-1", Date: testDay}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.ShiftsCount)
	assert.Equal(t, 0.0, result.TotalScheduledHours)
	assert.Equal(t, 0.0, result.Utilization)
	assert.Equal(t, 100.0, result.Adherence)
}

func TestEngine_Compute_UnassociatedEventScoping(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())
	padDay := testDay.AddDate(0, 0, -1)

	// No shifts at all: the pad-day break is out of scope, the in-range
	// break still shows up in raw totals.
	result, err := engine.Compute(ComputeInput{
		From: testDay,
		To:   testDay,
		Events: []tracking.BreakRecord{
			closedBreak(tracking.TypeShort, at(padDay, 10, 0), 10),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 30),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalBreaks)
	assert.Equal(t, 1, result.BreakCounts[string(tracking.TypeLunch)])
	assert.Equal(t, 0, result.BreakCounts[string(tracking.TypeShort)])
	assert.Equal(t, 0.0, result.Utilization)
}

func TestEngine_Compute_InvalidRange(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	_, err := engine.Compute(ComputeInput{
		From: testDay,
		To:   testDay.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, metrics.ErrInvalidRange)
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	in := ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 10)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 35),
			closedBreak(tracking.TypeOvertime, at(testDay, 17, 0), 45),
			punch(tracking.TypePunchOut, at(testDay, 17, 45)),
		},
	}

	first, err := engine.Compute(in)
	require.NoError(t, err)
	second, err := engine.Compute(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngine_Compute_PercentageBounds(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())

	// Pathological day: a break longer than the nominal shift and punches
	// far outside the scoring limit.
	result, err := engine.Compute(ComputeInput{
		From:   testDay,
		To:     testDay,
		Shifts: []shift.Shift{testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 11, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 600),
			closedBreak(tracking.TypeCompensation, at(testDay, 17, 0), 10000),
		},
	})
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"utilization": result.Utilization,
		"adherence":   result.Adherence,
		"conformance": result.Conformance,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestEngine_Compute_MultipleShiftsAssociation(t *testing.T) {
	t.Parallel()
	engine := NewEngine(metrics.DefaultPolicy())
	day2 := testDay.AddDate(0, 0, 1)

	result, err := engine.Compute(ComputeInput{
		From: testDay,
		To:   day2,
		Shifts: []shift.Shift{
			testShift(at(testDay, 9, 0), at(testDay, 17, 0)),
			testShift(at(day2, 9, 0), at(day2, 17, 0)),
		},
		Events: []tracking.BreakRecord{
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 30),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
			punch(tracking.TypePunchIn, at(day2, 9, 0)),
			closedBreak(tracking.TypeLunch, at(day2, 12, 30), 30),
			punch(tracking.TypePunchOut, at(day2, 17, 0)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ShiftsCount)
	assert.Equal(t, 16.0, result.TotalScheduledHours)
	assert.Equal(t, 60, result.TotalBreakMinutes)
	assert.Equal(t, 0, result.Incidents)
	assert.Equal(t, 100.0, result.Utilization)
	assert.Equal(t, 100.0, result.Adherence)
}
