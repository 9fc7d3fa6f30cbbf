package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAgentRepo struct {
	agents []agent.Agent
}

func (f *fakeAgentRepo) Create(ctx context.Context, a agent.Agent) (agent.Agent, error) {
	return a, nil
}

func (f *fakeAgentRepo) GetByID(ctx context.Context, id string) (agent.Agent, error) {
	for _, a := range f.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return agent.Agent{}, agent.ErrAgentNotFound
}

func (f *fakeAgentRepo) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	return nil, nil
}

func (f *fakeAgentRepo) ListActive(ctx context.Context) ([]agent.Agent, error) {
	return f.agents, nil
}

type fakeShiftRepo struct {
	byAgent map[string][]shift.Shift
	failFor string
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByAgentAndDate(ctx context.Context, agentID string, date time.Time) (*shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

func (f *fakeShiftRepo) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]shift.Shift, error) {
	if agentID == f.failFor {
		return nil, errors.New("connection reset")
	}
	return f.byAgent[agentID], nil
}

func (f *fakeShiftRepo) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeBreakRepo struct {
	byAgent map[string][]tracking.BreakRecord
}

func (f *fakeBreakRepo) Create(ctx context.Context, record tracking.BreakRecord) (tracking.BreakRecord, error) {
	return record, nil
}

func (f *fakeBreakRepo) GetByID(ctx context.Context, id string) (tracking.BreakRecord, error) {
	return tracking.BreakRecord{}, tracking.ErrBreakNotFound
}

func (f *fakeBreakRepo) GetActiveByAgent(ctx context.Context, agentID string) (*tracking.BreakRecord, error) {
	return nil, nil
}

func (f *fakeBreakRepo) ListActive(ctx context.Context) ([]tracking.BreakRecord, error) {
	return nil, nil
}

func (f *fakeBreakRepo) Update(ctx context.Context, record tracking.BreakRecord) error {
	return nil
}

func (f *fakeBreakRepo) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]tracking.BreakRecord, error) {
	return f.byAgent[agentID], nil
}

func (f *fakeBreakRepo) ListByRange(ctx context.Context, filter tracking.BreakFilter) ([]tracking.BreakRecord, error) {
	return nil, nil
}

type fakeOffDayRepo struct{}

func (f *fakeOffDayRepo) Create(ctx context.Context, o offday.OffDay) (offday.OffDay, error) {
	return o, nil
}

func (f *fakeOffDayRepo) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]offday.OffDay, error) {
	return nil, nil
}

func (f *fakeOffDayRepo) List(ctx context.Context, from, to time.Time) ([]offday.OffDay, error) {
	return nil, nil
}

func (f *fakeOffDayRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestMetricsService(agents []agent.Agent, shiftRepo *fakeShiftRepo, breakRepo *fakeBreakRepo) metrics.MetricsService {
	return NewMetricsService(
		NewEngine(metrics.DefaultPolicy()),
		&fakeAgentRepo{agents: agents},
		shiftRepo,
		breakRepo,
		&fakeOffDayRepo{},
	)
}

// ===== REPORT TESTS =====

func TestMetricsService_GenerateReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	agents := []agent.Agent{
		{ID: "a1", Username: "alice", FullName: "Alice", IsActive: true},
		{ID: "a2", Username: "bob", FullName: "Bob", IsActive: true},
	}
	shiftRepo := &fakeShiftRepo{byAgent: map[string][]shift.Shift{
		"a1": {testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		// Bob has no shifts in range.
	}}
	breakRepo := &fakeBreakRepo{byAgent: map[string][]tracking.BreakRecord{
		"a1": {
			punch(tracking.TypePunchIn, at(testDay, 9, 0)),
			closedBreak(tracking.TypeLunch, at(testDay, 12, 0), 30),
			punch(tracking.TypePunchOut, at(testDay, 17, 0)),
		},
	}}

	svc := newTestMetricsService(agents, shiftRepo, breakRepo)
	dateStr := testDay.Format("2006-01-02")

	report, err := svc.GenerateReport(ctx, metrics.ReportRequest{
		StartDate: dateStr,
		EndDate:   dateStr,
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Empty(t, report.Failures)
	assert.Equal(t, "Alice", report.Rows[0].AgentName)
	assert.Equal(t, "Bob", report.Rows[1].AgentName)
	assert.Equal(t, 100.0, report.Rows[0].Utilization)
	assert.Equal(t, 0.0, report.Rows[1].Utilization)
	assert.Equal(t, 100.0, report.Rows[1].Adherence)

	// Percentage means only cover agents with shifts in range.
	assert.Equal(t, 1, report.Totals.ScheduledAgents)
	assert.Equal(t, 100.0, report.Totals.MeanUtilization)
	assert.Equal(t, 100.0, report.Totals.MeanAdherence)
	assert.Equal(t, 1, report.Totals.ShiftsCount)
	assert.Equal(t, 30, report.Totals.TotalBreakMinutes)
	assert.Equal(t, 8.0, report.Totals.TotalScheduledHours)
}

func TestMetricsService_GenerateReport_FailureIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	agents := []agent.Agent{
		{ID: "a1", Username: "alice", FullName: "Alice", IsActive: true},
		{ID: "a2", Username: "bob", FullName: "Bob", IsActive: true},
	}
	shiftRepo := &fakeShiftRepo{
		byAgent: map[string][]shift.Shift{
			"a1": {testShift(at(testDay, 9, 0), at(testDay, 17, 0))},
		},
		failFor: "a2",
	}

	svc := newTestMetricsService(agents, shiftRepo, &fakeBreakRepo{})
	dateStr := testDay.Format("2006-01-02")

	report, err := svc.GenerateReport(ctx, metrics.ReportRequest{
		StartDate: dateStr,
		EndDate:   dateStr,
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Alice", report.Rows[0].AgentName)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "a2", report.Failures[0].AgentID)
	assert.Contains(t, report.Failures[0].Error, "connection reset")
}

func TestMetricsService_GenerateReport_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestMetricsService(nil, &fakeShiftRepo{}, &fakeBreakRepo{})

	_, err := svc.GenerateReport(ctx, metrics.ReportRequest{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-01",
	})
	assert.Error(t, err)
}

func TestMetricsService_GetAgentMetrics_AgentNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestMetricsService(nil, &fakeShiftRepo{}, &fakeBreakRepo{})

	_, err := svc.GetAgentMetrics(ctx, metrics.AgentMetricsRequest{
		AgentID:   "ghost",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-02",
	})
	assert.ErrorIs(t, err, metrics.ErrAgentNotFound)
}

func TestAggregate_EmptyRows(t *testing.T) {
	t.Parallel()

	agg := aggregate(nil)
	assert.Equal(t, 0, agg.ScheduledAgents)
	assert.Equal(t, 0.0, agg.MeanUtilization)
	assert.Equal(t, 0.0, agg.MeanAdherence)
	assert.Equal(t, 0.0, agg.MeanConformance)
}
