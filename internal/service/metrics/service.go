package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
)

type MetricsServiceImpl struct {
	engine     *Engine
	agentRepo  agent.AgentRepository
	shiftRepo  shift.ShiftRepository
	breakRepo  tracking.BreakRepository
	offDayRepo offday.OffDayRepository
}

func NewMetricsService(
	engine *Engine,
	agentRepo agent.AgentRepository,
	shiftRepo shift.ShiftRepository,
	breakRepo tracking.BreakRepository,
	offDayRepo offday.OffDayRepository,
) metrics.MetricsService {
	return &MetricsServiceImpl{
		engine:     engine,
		agentRepo:  agentRepo,
		shiftRepo:  shiftRepo,
		breakRepo:  breakRepo,
		offDayRepo: offDayRepo,
	}
}

// GetAgentMetrics implements metrics.MetricsService.
func (s *MetricsServiceImpl) GetAgentMetrics(ctx context.Context, req metrics.AgentMetricsRequest) (metrics.Result, error) {
	if err := req.Validate(); err != nil {
		return metrics.Result{}, err
	}

	if _, err := s.agentRepo.GetByID(ctx, req.AgentID); err != nil {
		return metrics.Result{}, metrics.ErrAgentNotFound
	}

	from, to := req.Range()
	return s.computeForAgent(ctx, req.AgentID, from, to)
}

func (s *MetricsServiceImpl) computeForAgent(ctx context.Context, agentID string, from, to time.Time) (metrics.Result, error) {
	shifts, err := s.shiftRepo.ListByAgentAndRange(ctx, agentID, from, to)
	if err != nil {
		return metrics.Result{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	// Pad the event window by one day on each side so breaks spilling past
	// midnight regroup onto the shift that owns them.
	eventsFrom := from.AddDate(0, 0, -1)
	eventsTo := to.AddDate(0, 0, 2) // exclusive upper bound
	events, err := s.breakRepo.ListByAgentAndRange(ctx, agentID, eventsFrom, eventsTo)
	if err != nil {
		return metrics.Result{}, fmt.Errorf("failed to list break records: %w", err)
	}

	offDays, err := s.offDayRepo.ListByAgentAndRange(ctx, agentID, from, to)
	if err != nil {
		return metrics.Result{}, fmt.Errorf("failed to list off-days: %w", err)
	}

	return s.engine.Compute(ComputeInput{
		From:    from,
		To:      to,
		Shifts:  shifts,
		Events:  events,
		OffDays: offDays,
	})
}
