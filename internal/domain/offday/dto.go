package offday

import (
	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

type CreateOffDayRequest struct {
	AgentID string `json:"agent_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Reason  string `json:"reason"`
}

func (r *CreateOffDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OffDayResponse struct {
	ID      string `json:"id"`
	AgentID string `json:"agent_id"`
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}

type ListOffDaysResponse struct {
	OffDays []OffDayResponse `json:"off_days"`
	Total   int              `json:"total"`
}

// NewOffDayResponse maps an off-day entity to its API shape.
func NewOffDayResponse(o OffDay) OffDayResponse {
	return OffDayResponse{
		ID:      o.ID,
		AgentID: o.AgentID,
		Date:    o.Date.Format("2006-01-02"),
		Reason:  o.Reason,
	}
}
