package shift

import (
	"time"

	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	AgentID   string `json:"agent_id"`
	ShiftDate string `json:"shift_date"` // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	EndDate   string `json:"end_date"`   // optional YYYY-MM-DD for explicit overnight end
	CreatedBy string `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window resolves the request into start/end instants. An end time not
// after the start time rolls over to the next calendar day (overnight
// shift) unless an explicit end_date says otherwise.
func (r *CreateShiftRequest) Window() (time.Time, time.Time, error) {
	date, ok := validator.IsValidDate(r.ShiftDate)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidShift
	}
	startClock, ok := validator.IsValidClockTime(r.StartTime)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidShift
	}
	endClock, ok := validator.IsValidClockTime(r.EndTime)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidShift
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)

	endDate := date
	if r.EndDate != "" {
		endDate, _ = validator.IsValidDate(r.EndDate)
	}
	endAt := time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)

	if r.EndDate == "" && !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	if !endAt.After(startAt) {
		return time.Time{}, time.Time{}, ErrInvalidShift
	}
	return startAt, endAt, nil
}

type BulkShiftRequest struct {
	AgentIDs  []string `json:"agent_ids"`
	ShiftDate string   `json:"shift_date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	EndDate   string   `json:"end_date"`
	CreatedBy string   `json:"-"`
}

func (r *BulkShiftRequest) Validate() error {
	single := CreateShiftRequest{
		AgentID:   "bulk", // agent ids validated individually below
		ShiftDate: r.ShiftDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		EndDate:   r.EndDate,
	}
	err := single.Validate()

	var errs validator.ValidationErrors
	if err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = ve
		} else {
			return err
		}
	}

	if len(r.AgentIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_ids",
			Message: "agent_ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftFilter struct {
	AgentID   *string
	StartDate time.Time // inclusive, on shift start date
	EndDate   time.Time // inclusive
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	AgentID       string  `json:"agent_id"`
	AgentName     *string `json:"agent_name,omitempty"`
	ShiftDate     string  `json:"shift_date"`
	StartTime     string  `json:"start_time"`
	EndDate       string  `json:"end_date"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
}

type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

type BulkShiftResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// NewShiftResponse maps a shift entity to its API shape.
func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		AgentID:       s.AgentID,
		AgentName:     s.AgentName,
		ShiftDate:     s.StartAt.Format("2006-01-02"),
		StartTime:     s.StartAt.Format("15:04"),
		EndDate:       s.EndAt.Format("2006-01-02"),
		EndTime:       s.EndAt.Format("15:04"),
		DurationHours: float64(int(s.DurationHours()*100+0.5)) / 100,
	}
}
