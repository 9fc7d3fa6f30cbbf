package offday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type OffDayServiceImpl struct {
	db *database.DB
	offday.OffDayRepository
	agent.AgentRepository
}

func NewOffDayService(
	db *database.DB,
	offDayRepo offday.OffDayRepository,
	agentRepo agent.AgentRepository,
) offday.OffDayService {
	return &OffDayServiceImpl{
		db:               db,
		OffDayRepository: offDayRepo,
		AgentRepository:  agentRepo,
	}
}

// CreateOffDay implements offday.OffDayService.
func (s *OffDayServiceImpl) CreateOffDay(ctx context.Context, req offday.CreateOffDayRequest) (offday.OffDayResponse, error) {
	if err := req.Validate(); err != nil {
		return offday.OffDayResponse{}, err
	}

	if _, err := s.AgentRepository.GetByID(ctx, req.AgentID); err != nil {
		return offday.OffDayResponse{}, agent.ErrAgentNotFound
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing, err := s.OffDayRepository.ListByAgentAndRange(ctx, req.AgentID, date, date)
	if err != nil {
		return offday.OffDayResponse{}, fmt.Errorf("failed to look up existing off-day: %w", err)
	}
	if len(existing) > 0 {
		return offday.OffDayResponse{}, offday.ErrOffDayExists
	}

	created, err := s.OffDayRepository.Create(ctx, offday.OffDay{
		ID:      uuid.NewString(),
		AgentID: req.AgentID,
		Date:    date,
		Reason:  req.Reason,
	})
	if err != nil {
		return offday.OffDayResponse{}, fmt.Errorf("failed to create off-day: %w", err)
	}

	return offday.NewOffDayResponse(created), nil
}

// ListOffDays implements offday.OffDayService.
func (s *OffDayServiceImpl) ListOffDays(ctx context.Context, from, to time.Time) (offday.ListOffDaysResponse, error) {
	offDays, err := s.OffDayRepository.List(ctx, from, to)
	if err != nil {
		return offday.ListOffDaysResponse{}, fmt.Errorf("failed to list off-days: %w", err)
	}

	resp := offday.ListOffDaysResponse{
		OffDays: make([]offday.OffDayResponse, 0, len(offDays)),
		Total:   len(offDays),
	}
	for _, o := range offDays {
		resp.OffDays = append(resp.OffDays, offday.NewOffDayResponse(o))
	}
	return resp, nil
}

// DeleteOffDay implements offday.OffDayService.
func (s *OffDayServiceImpl) DeleteOffDay(ctx context.Context, id string) error {
	return s.OffDayRepository.Delete(ctx, id)
}
