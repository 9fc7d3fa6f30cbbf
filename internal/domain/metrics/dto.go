package metrics

import (
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

type AgentMetricsRequest struct {
	AgentID   string `json:"agent_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (r *AgentMetricsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	errs = append(errs, validateRange(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed inclusive date range. Validate must pass first.
func (r *AgentMetricsRequest) Range() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.StartDate)
	to, _ := validator.IsValidDate(r.EndDate)
	return from, to
}

type ReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ReportRequest) Validate() error {
	errs := validateRange(r.StartDate, r.EndDate)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed inclusive date range. Validate must pass first.
func (r *ReportRequest) Range() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.StartDate)
	to, _ := validator.IsValidDate(r.EndDate)
	return from, to
}

func validateRange(startDate, endDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(startDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	to, okTo := validator.IsValidDate(endDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	return errs
}
