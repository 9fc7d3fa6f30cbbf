package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.agent_id, s.start_at, s.end_at, s.created_by,
	s.created_at, s.updated_at, a.full_name
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.AgentID, &s.StartAt, &s.EndAt, &s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt, &s.AgentName,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, agent_id, start_at, end_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.ID,
		newShift.AgentID,
		newShift.StartAt,
		newShift.EndAt,
		newShift.CreatedBy,
	).Scan(&newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN agents a ON a.id = s.agent_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetByAgentAndDate implements shift.ShiftRepository.
func (r *shiftRepository) GetByAgentAndDate(ctx context.Context, agentID string, date time.Time) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN agents a ON a.id = s.agent_id
		WHERE s.agent_id = $1
		  AND s.start_at::date = $2::date
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query, agentID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by agent and date: %w", err)
	}

	return &s, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_at = $2, end_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.StartAt, s.EndAt)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListByAgentAndRange implements shift.ShiftRepository.
func (r *shiftRepository) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN agents a ON a.id = s.agent_id
		WHERE s.agent_id = $1
		  AND s.start_at::date >= $2::date
		  AND s.start_at::date <= $3::date
		ORDER BY s.start_at
	`

	rows, err := q.Query(ctx, query, agentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN agents a ON a.id = s.agent_id
		WHERE s.start_at::date >= $1::date
		  AND s.start_at::date <= $2::date
	`)
	args := []interface{}{filter.StartDate, filter.EndDate}

	if filter.AgentID != nil {
		args = append(args, *filter.AgentID)
		sb.WriteString(fmt.Sprintf(" AND s.agent_id = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY s.start_at, a.full_name")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}
	return shifts, nil
}
