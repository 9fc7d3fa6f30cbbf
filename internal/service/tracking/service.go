package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type BreakServiceImpl struct {
	db     *database.DB
	policy metrics.Policy
	tracking.BreakRepository
	agent.AgentRepository
}

func NewBreakService(
	db *database.DB,
	policy metrics.Policy,
	breakRepo tracking.BreakRepository,
	agentRepo agent.AgentRepository,
) tracking.BreakService {
	return &BreakServiceImpl{
		db:              db,
		policy:          policy,
		BreakRepository: breakRepo,
		AgentRepository: agentRepo,
	}
}

// StartBreak implements tracking.BreakService.
func (s *BreakServiceImpl) StartBreak(ctx context.Context, req tracking.StartBreakRequest) (tracking.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return tracking.BreakResponse{}, err
	}

	if _, err := s.AgentRepository.GetByID(ctx, req.AgentID); err != nil {
		return tracking.BreakResponse{}, agent.ErrAgentNotFound
	}

	now := time.Now().UTC()
	breakType := tracking.BreakType(req.BreakType)

	record := tracking.BreakRecord{
		ID:      uuid.NewString(),
		AgentID: req.AgentID,
		Type:    breakType,
		StartAt: now,
	}

	if breakType.IsAttendance() {
		// Punch markers are instantaneous: closed on creation with zero
		// duration, never overdue, and never blocked by an open break.
		zero := 0
		record.EndAt = &now
		record.DurationMinutes = &zero
	} else {
		active, err := s.BreakRepository.GetActiveByAgent(ctx, req.AgentID)
		if err != nil {
			return tracking.BreakResponse{}, fmt.Errorf("failed to check active break: %w", err)
		}
		if active != nil {
			return tracking.BreakResponse{}, tracking.ErrActiveBreakExists
		}
	}

	created, err := s.BreakRepository.Create(ctx, record)
	if err != nil {
		return tracking.BreakResponse{}, fmt.Errorf("failed to create break record: %w", err)
	}

	return tracking.NewBreakResponse(created, s.policy.AllowedDuration(created.Type), now), nil
}

// EndBreak implements tracking.BreakService.
func (s *BreakServiceImpl) EndBreak(ctx context.Context, req tracking.EndBreakRequest) (tracking.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return tracking.BreakResponse{}, err
	}

	active, err := s.BreakRepository.GetActiveByAgent(ctx, req.AgentID)
	if err != nil {
		return tracking.BreakResponse{}, fmt.Errorf("failed to get active break: %w", err)
	}
	if active == nil {
		return tracking.BreakResponse{}, tracking.ErrNoActiveBreak
	}

	now := time.Now().UTC()
	duration := int(now.Sub(active.StartAt).Minutes())
	if duration < 0 {
		duration = 0
	}

	allowed := s.policy.AllowedDuration(active.Type)
	active.EndAt = &now
	active.DurationMinutes = &duration
	// Working-time breaks are never overdue regardless of duration.
	active.IsOverdue = !s.policy.IsWorkingTime(active.Type) && duration > allowed

	if err := s.BreakRepository.Update(ctx, *active); err != nil {
		return tracking.BreakResponse{}, fmt.Errorf("failed to close break record: %w", err)
	}

	return tracking.NewBreakResponse(*active, allowed, now), nil
}

// UpdateNotes implements tracking.BreakService.
func (s *BreakServiceImpl) UpdateNotes(ctx context.Context, req tracking.UpdateNotesRequest) (tracking.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return tracking.BreakResponse{}, err
	}

	record, err := s.BreakRepository.GetByID(ctx, req.BreakID)
	if err != nil {
		return tracking.BreakResponse{}, tracking.ErrBreakNotFound
	}

	record.Notes = req.Notes
	if err := s.BreakRepository.Update(ctx, record); err != nil {
		return tracking.BreakResponse{}, fmt.Errorf("failed to update break notes: %w", err)
	}

	return tracking.NewBreakResponse(record, s.policy.AllowedDuration(record.Type), time.Now().UTC()), nil
}

// ListBreaks implements tracking.BreakService.
func (s *BreakServiceImpl) ListBreaks(ctx context.Context, filter tracking.BreakFilter) (tracking.ListBreaksResponse, error) {
	records, err := s.BreakRepository.ListByRange(ctx, filter)
	if err != nil {
		return tracking.ListBreaksResponse{}, fmt.Errorf("failed to list break records: %w", err)
	}

	now := time.Now().UTC()
	resp := tracking.ListBreaksResponse{
		Breaks: make([]tracking.BreakResponse, 0, len(records)),
		Total:  len(records),
	}
	for _, record := range records {
		resp.Breaks = append(resp.Breaks, tracking.NewBreakResponse(record, s.policy.AllowedDuration(record.Type), now))
	}
	return resp, nil
}

// GetActiveBreaks implements tracking.BreakService.
func (s *BreakServiceImpl) GetActiveBreaks(ctx context.Context) (tracking.ListBreaksResponse, error) {
	records, err := s.BreakRepository.ListActive(ctx)
	if err != nil {
		return tracking.ListBreaksResponse{}, fmt.Errorf("failed to list active breaks: %w", err)
	}

	now := time.Now().UTC()
	resp := tracking.ListBreaksResponse{
		Breaks: make([]tracking.BreakResponse, 0, len(records)),
		Total:  len(records),
	}
	for _, record := range records {
		resp.Breaks = append(resp.Breaks, tracking.NewBreakResponse(record, s.policy.AllowedDuration(record.Type), now))
	}
	return resp, nil
}
