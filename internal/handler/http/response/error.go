package response

import (
	"errors"
	"net/http"

	"github.com/rta-tracker/rta-backend-go/internal/domain/agent"
	"github.com/rta-tracker/rta-backend-go/internal/domain/metrics"
	"github.com/rta-tracker/rta-backend-go/internal/domain/offday"
	"github.com/rta-tracker/rta-backend-go/internal/domain/shift"
	"github.com/rta-tracker/rta-backend-go/internal/domain/tracking"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Agent domain errors
	case errors.Is(err, agent.ErrAgentNotFound):
		NotFound(w, "Agent not found")
	case errors.Is(err, agent.ErrUsernameExists):
		Conflict(w, "Username already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAgentNotFound):
		NotFound(w, "Agent not found")
	case errors.Is(err, shift.ErrInvalidShift):
		BadRequest(w, "Shift end must be after shift start", nil)
	case errors.Is(err, shift.ErrNoAgentsInBulk):
		BadRequest(w, "No valid agents in bulk request", nil)

	// Tracking domain errors
	case errors.Is(err, tracking.ErrActiveBreakExists):
		Conflict(w, "Agent already has an active break")
	case errors.Is(err, tracking.ErrNoActiveBreak):
		BadRequest(w, "Agent has no active break to end", nil)
	case errors.Is(err, tracking.ErrBreakNotFound):
		NotFound(w, "Break record not found")
	case errors.Is(err, tracking.ErrUnknownBreakType):
		BadRequest(w, "Unknown break type", nil)

	// Off-day domain errors
	case errors.Is(err, offday.ErrOffDayNotFound):
		NotFound(w, "Off-day not found")
	case errors.Is(err, offday.ErrOffDayExists):
		Conflict(w, "Agent already has an off-day on that date")

	// Metrics domain errors
	case errors.Is(err, metrics.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, metrics.ErrAgentNotFound):
		NotFound(w, "Agent not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
