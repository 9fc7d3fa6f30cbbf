package agent

import (
	"github.com/rta-tracker/rta-backend-go/internal/pkg/validator"
)

type CreateAgentRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (r *CreateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 chars of letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AgentResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

type ListAgentsResponse struct {
	Agents []AgentResponse `json:"agents"`
	Total  int             `json:"total"`
}

// NewAgentResponse maps an agent entity to its API shape.
func NewAgentResponse(a Agent) AgentResponse {
	return AgentResponse{
		ID:       a.ID,
		Username: a.Username,
		FullName: a.FullName,
		IsActive: a.IsActive,
	}
}
