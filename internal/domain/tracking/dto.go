package tracking

import (
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

// ========================================
// BREAK DTOs
// ========================================

type StartBreakRequest struct {
	AgentID   string `json:"agent_id"`
	BreakType string `json:"break_type"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if validator.IsEmpty(r.BreakType) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type is required",
		})
	} else if !BreakType(r.BreakType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "unknown break_type",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EndBreakRequest struct {
	AgentID string `json:"agent_id"`
}

func (r *EndBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNotesRequest struct {
	BreakID string `json:"-"`
	Notes   string `json:"notes"`
}

func (r *UpdateNotesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BreakID) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_id",
			Message: "break_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakFilter struct {
	AgentID   *string
	BreakType *BreakType
	From      time.Time
	To        time.Time
}

type BreakResponse struct {
	ID              string  `json:"id"`
	AgentID         string  `json:"agent_id"`
	AgentName       *string `json:"agent_name,omitempty"`
	BreakType       string  `json:"break_type"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	ElapsedMinutes  int     `json:"elapsed_minutes"`
	AllowedMinutes  int     `json:"allowed_minutes"`
	IsActive        bool    `json:"is_active"`
	IsOverdue       bool    `json:"is_overdue"`
	Notes           string  `json:"notes"`
}

type ListBreaksResponse struct {
	Breaks []BreakResponse `json:"breaks"`
	Total  int             `json:"total"`
}

// NewBreakResponse maps a record to its API shape. allowed is the policy
// allowance for the record's type; now anchors the elapsed time of an
// active break.
func NewBreakResponse(record BreakRecord, allowed int, now time.Time) BreakResponse {
	resp := BreakResponse{
		ID:             record.ID,
		AgentID:        record.AgentID,
		AgentName:      record.AgentName,
		BreakType:      string(record.Type),
		StartTime:      record.StartAt.Format(time.RFC3339),
		AllowedMinutes: allowed,
		IsActive:       record.IsActive(),
		IsOverdue:      record.IsOverdue,
		Notes:          record.Notes,
	}

	if record.EndAt != nil {
		endStr := record.EndAt.Format(time.RFC3339)
		resp.EndTime = &endStr
		resp.DurationMinutes = record.DurationMinutes
		if record.DurationMinutes != nil {
			resp.ElapsedMinutes = *record.DurationMinutes
		}
	} else {
		elapsed := int(now.Sub(record.StartAt).Minutes())
		if elapsed < 0 {
			elapsed = 0
		}
		resp.ElapsedMinutes = elapsed
	}

	return resp
}
