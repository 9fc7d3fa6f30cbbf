package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) tracking.BreakRepository {
	return &breakRepository{db: db}
}

const breakColumns = `
	b.id, b.agent_id, b.break_type, b.start_at, b.end_at,
	b.duration_minutes, b.is_overdue, b.notes,
	b.created_at, b.updated_at, a.full_name
`

func scanBreak(row pgx.Row) (tracking.BreakRecord, error) {
	var b tracking.BreakRecord
	err := row.Scan(
		&b.ID, &b.AgentID, &b.Type, &b.StartAt, &b.EndAt,
		&b.DurationMinutes, &b.IsOverdue, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt, &b.AgentName,
	)
	return b, err
}

// Create implements tracking.BreakRepository.
func (r *breakRepository) Create(ctx context.Context, record tracking.BreakRecord) (tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_records (
			id, agent_id, break_type, start_at, end_at,
			duration_minutes, is_overdue, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.AgentID,
		record.Type,
		record.StartAt,
		record.EndAt,
		record.DurationMinutes,
		record.IsOverdue,
		record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return tracking.BreakRecord{}, fmt.Errorf("failed to create break record: %w", err)
	}

	return record, nil
}

// GetByID implements tracking.BreakRepository.
func (r *breakRepository) GetByID(ctx context.Context, id string) (tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records b
		JOIN agents a ON a.id = b.agent_id
		WHERE b.id = $1
	`

	b, err := scanBreak(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tracking.BreakRecord{}, tracking.ErrBreakNotFound
		}
		return tracking.BreakRecord{}, fmt.Errorf("failed to get break record: %w", err)
	}

	return b, nil
}

// GetActiveByAgent implements tracking.BreakRepository.
func (r *breakRepository) GetActiveByAgent(ctx context.Context, agentID string) (*tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records b
		JOIN agents a ON a.id = b.agent_id
		WHERE b.agent_id = $1
		  AND b.end_at IS NULL
		ORDER BY b.start_at DESC
		LIMIT 1
	`

	b, err := scanBreak(q.QueryRow(ctx, query, agentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active break: %w", err)
	}

	return &b, nil
}

// ListActive implements tracking.BreakRepository.
func (r *breakRepository) ListActive(ctx context.Context) ([]tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records b
		JOIN agents a ON a.id = b.agent_id
		WHERE b.end_at IS NULL
		ORDER BY b.start_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active breaks: %w", err)
	}
	defer rows.Close()

	return collectBreaks(rows)
}

// Update implements tracking.BreakRepository.
func (r *breakRepository) Update(ctx context.Context, record tracking.BreakRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE break_records
		SET end_at = $2, duration_minutes = $3, is_overdue = $4,
		    notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.EndAt,
		record.DurationMinutes,
		record.IsOverdue,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update break record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracking.ErrBreakNotFound
	}

	return nil
}

// ListByAgentAndRange implements tracking.BreakRepository.
func (r *breakRepository) ListByAgentAndRange(ctx context.Context, agentID string, from, to time.Time) ([]tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records b
		JOIN agents a ON a.id = b.agent_id
		WHERE b.agent_id = $1
		  AND b.start_at >= $2
		  AND b.start_at < $3
		ORDER BY b.start_at
	`

	rows, err := q.Query(ctx, query, agentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}
	defer rows.Close()

	return collectBreaks(rows)
}

// ListByRange implements tracking.BreakRepository.
func (r *breakRepository) ListByRange(ctx context.Context, filter tracking.BreakFilter) ([]tracking.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + breakColumns + `
		FROM break_records b
		JOIN agents a ON a.id = b.agent_id
		WHERE b.start_at >= $1
		  AND b.start_at < $2
	`)
	args := []interface{}{filter.From, filter.To}

	if filter.AgentID != nil {
		args = append(args, *filter.AgentID)
		sb.WriteString(fmt.Sprintf(" AND b.agent_id = $%d", len(args)))
	}
	if filter.BreakType != nil {
		args = append(args, *filter.BreakType)
		sb.WriteString(fmt.Sprintf(" AND b.break_type = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY b.start_at DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}
	defer rows.Close()

	return collectBreaks(rows)
}

func collectBreaks(rows pgx.Rows) ([]tracking.BreakRecord, error) {
	var records []tracking.BreakRecord
	for rows.Next() {
		b, err := scanBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break record: %w", err)
		}
		records = append(records, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate break records: %w", err)
	}
	return records, nil
}
