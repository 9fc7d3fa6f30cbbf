package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type offDayRepository struct {
	db *database.DB
}

func NewOffDayRepository(db *database.DB) offday.OffDayRepository {
	return &offDayRepository{db: db}
}

// Create implements offday.OffDayRepository.
func (r *offDayRepository) Create(ctx context.Context, o offday.OffDay) (offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO off_days (id, agent_id, date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, o.ID, o.AgentID, o.Date, o.Reason).Scan(&o.CreatedAt)
	if err != nil {
		return offday.OffDay{}, fmt.Errorf("failed to create off-day: %w", err)
	}

	return o, nil
}

// ListByAgentAndRange implements offday.OffDayRepository.
func (r *offDayRepository) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_id, date, reason, created_at
		FROM off_days
		WHERE agent_id = $1
		  AND date >= $2::date
		  AND date <= $3::date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, agentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list off-days: %w", err)
	}
	defer rows.Close()

	return collectOffDays(rows)
}

// List implements offday.OffDayRepository.
func (r *offDayRepository) List(ctx context.Context, from, to time.Time) ([]offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_id, date, reason, created_at
		FROM off_days
		WHERE date >= $1::date
		  AND date <= $2::date
		ORDER BY date, agent_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list off-days: %w", err)
	}
	defer rows.Close()

	return collectOffDays(rows)
}

// Delete implements offday.OffDayRepository.
func (r *offDayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM off_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete off-day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offday.ErrOffDayNotFound
	}

	return nil
}

func collectOffDays(rows pgx.Rows) ([]offday.OffDay, error) {
	var offDays []offday.OffDay
	for rows.Next() {
		var o offday.OffDay
		if err := rows.Scan(&o.ID, &o.AgentID, &o.Date, &o.Reason, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan off-day: %w", err)
		}
		offDays = append(offDays, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate off-days: %w", err)
	}
	return offDays, nil
}
