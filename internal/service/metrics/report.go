package metrics

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"golang.org/x/sync/errgroup"
)

// reportConcurrency caps the number of per-agent computations in flight.
const reportConcurrency = 8

// GenerateReport implements metrics.MetricsService. Agents are computed in
// parallel; one agent's failure becomes a row in Failures, never an abort
// of the batch.
func (s *MetricsServiceImpl) GenerateReport(ctx context.Context, req metrics.ReportRequest) (metrics.Report, error) {
	if err := req.Validate(); err != nil {
		return metrics.Report{}, err
	}

	agents, err := s.agentRepo.ListActive(ctx)
	if err != nil {
		return metrics.Report{}, fmt.Errorf("failed to list agents: %w", err)
	}

	from, to := req.Range()

	var (
		mu       sync.Mutex
		rows     []metrics.AgentResult
		failures []metrics.AgentFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)
	for _, a := range agents {
		a := a
		g.Go(func() error {
			result, err := s.computeAgentRow(gctx, a, from, to)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, metrics.AgentFailure{
					AgentID:   a.ID,
					AgentName: a.FullName,
					Error:     err.Error(),
				})
				return nil
			}
			rows = append(rows, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metrics.Report{}, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].AgentName < rows[j].AgentName })
	sort.Slice(failures, func(i, j int) bool { return failures[i].AgentName < failures[j].AgentName })

	return metrics.Report{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
		Failures:    failures,
		Totals:      aggregate(rows),
	}, nil
}

// computeAgentRow isolates one agent's computation, converting a panic on
// malformed data into a per-agent error.
func (s *MetricsServiceImpl) computeAgentRow(ctx context.Context, a agent.Agent, from, to time.Time) (row metrics.AgentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("metrics computation panicked: %v", r)
		}
	}()

	result, err := s.computeForAgent(ctx, a.ID, from, to)
	if err != nil {
		return metrics.AgentResult{}, err
	}
	return metrics.AgentResult{
		AgentID:   a.ID,
		AgentName: a.FullName,
		Result:    result,
	}, nil
}

// aggregate sums count metrics and averages percentage metrics across the
// agents that had at least one shift in range.
func aggregate(rows []metrics.AgentResult) metrics.Aggregate {
	var agg metrics.Aggregate
	var utilSum, adherSum, confSum float64

	for _, row := range rows {
		agg.TotalScheduledHours += row.TotalScheduledHours
		agg.TotalBreakMinutes += row.TotalBreakMinutes
		agg.ExceedingBreakMinutes += row.ExceedingBreakMinutes
		agg.Incidents += row.Incidents
		agg.TotalBreaks += row.TotalBreaks
		agg.ShiftsCount += row.ShiftsCount

		if row.ShiftsCount > 0 {
			agg.ScheduledAgents++
			utilSum += row.Utilization
			adherSum += row.Adherence
			confSum += row.Conformance
		}
	}

	agg.TotalScheduledHours = round2(agg.TotalScheduledHours)
	if agg.ScheduledAgents > 0 {
		n := float64(agg.ScheduledAgents)
		agg.MeanUtilization = round1(utilSum / n)
		agg.MeanAdherence = round1(adherSum / n)
		agg.MeanConformance = round1(confSum / n)
	}

	return agg
}
