package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
	"github.com/rta-tracker/rta-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	agent.AgentRepository
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	agentRepo agent.AgentRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
		AgentRepository: agentRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.AgentRepository.GetByID(ctx, req.AgentID); err != nil {
		return shift.ShiftResponse{}, shift.ErrAgentNotFound
	}

	startAt, endAt, err := req.Window()
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	upserted, _, err := s.upsert(ctx, req.AgentID, startAt, endAt, req.CreatedBy)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(upserted), nil
}

// upsert creates the agent's shift for the start date or replaces the
// window of the existing one. Returns whether a new row was created.
func (s *ShiftServiceImpl) upsert(ctx context.Context, agentID string, startAt, endAt time.Time, createdBy string) (shift.Shift, bool, error) {
	existing, err := s.ShiftRepository.GetByAgentAndDate(ctx, agentID, startAt)
	if err != nil {
		return shift.Shift{}, false, fmt.Errorf("failed to look up existing shift: %w", err)
	}

	if existing != nil {
		existing.StartAt = startAt
		existing.EndAt = endAt
		if err := s.ShiftRepository.Update(ctx, *existing); err != nil {
			return shift.Shift{}, false, fmt.Errorf("failed to update shift: %w", err)
		}
		return *existing, false, nil
	}

	newShift := shift.Shift{
		ID:      uuid.NewString(),
		AgentID: agentID,
		StartAt: startAt,
		EndAt:   endAt,
	}
	if createdBy != "" {
		newShift.CreatedBy = &createdBy
	}

	created, err := s.ShiftRepository.Create(ctx, newShift)
	if err != nil {
		return shift.Shift{}, false, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, true, nil
}

// CreateBulkShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateBulkShifts(ctx context.Context, req shift.BulkShiftRequest) (shift.BulkShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.BulkShiftResponse{}, err
	}

	single := shift.CreateShiftRequest{
		AgentID:   "bulk",
		ShiftDate: req.ShiftDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		EndDate:   req.EndDate,
	}
	startAt, endAt, err := single.Window()
	if err != nil {
		return shift.BulkShiftResponse{}, err
	}

	// Known agents are upserted in one transaction; unknown agent IDs
	// are skipped without failing the batch.
	var resp shift.BulkShiftResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, agentID := range req.AgentIDs {
			if _, err := s.AgentRepository.GetByID(txCtx, agentID); err != nil {
				resp.Skipped++
				continue
			}

			_, created, err := s.upsert(txCtx, agentID, startAt, endAt, req.CreatedBy)
			if err != nil {
				return err
			}
			if created {
				resp.Created++
			} else {
				resp.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return shift.BulkShiftResponse{}, err
	}

	if resp.Created == 0 && resp.Updated == 0 {
		return resp, shift.ErrNoAgentsInBulk
	}
	return resp, nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftsResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := shift.ListShiftsResponse{
		Shifts: make([]shift.ShiftResponse, 0, len(shifts)),
		Total:  len(shifts),
	}
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, shift.NewShiftResponse(sh))
	}
	return resp, nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return shift.ErrShiftNotFound
	}
	return s.ShiftRepository.Delete(ctx, id)
}
