package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

const msgRequired = "is required"

// CreateLifecycleRequest represents the JSON body for starting a lifecycle.
type CreateLifecycleRequest struct {
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	Department  string `json:"department"`
	RoleID      string `json:"role_id,omitempty"`
	InitiatedBy string `json:"initiated_by"`
	AssignedHR  string `json:"assigned_hr"`
	StartDate   string `json:"start_date,omitempty"` // RFC 3339; empty means "now"
}

// Validate checks that required fields are present and enums are valid.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateLifecycleRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.EmployeeID) == "" {
		fields["employee_id"] = msgRequired
	}
	if !lifecycle.Type(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	if strings.TrimSpace(r.Department) == "" {
		fields["department"] = msgRequired
	}
	if strings.TrimSpace(r.InitiatedBy) == "" {
		fields["initiated_by"] = msgRequired
	}
	if strings.TrimSpace(r.AssignedHR) == "" {
		fields["assigned_hr"] = msgRequired
	}
	if r.StartDate != "" {
		if _, err := time.Parse(time.RFC3339, r.StartDate); err != nil {
			fields["start_date"] = "must be an RFC 3339 timestamp"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToNewParams converts the request to factory params. Validate must have
// passed; the start date parse error is unreachable after it.
func (r *CreateLifecycleRequest) ToNewParams() lifecycle.NewParams {
	var start time.Time
	if r.StartDate != "" {
		start, _ = time.Parse(time.RFC3339, r.StartDate)
	}
	return lifecycle.NewParams{
		EmployeeID:  r.EmployeeID,
		Type:        lifecycle.Type(r.Type),
		Department:  r.Department,
		RoleID:      r.RoleID,
		InitiatedBy: r.InitiatedBy,
		AssignedHR:  r.AssignedHR,
		StartDate:   start,
	}
}

// UpdateTaskRequest represents the JSON body for a task transition. The
// acting employee comes from the caller identity headers, not the body.
type UpdateTaskRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// Validate checks that the target status is present and a defined constant.
// The state machine itself decides whether the transition is allowed.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Status) == "" {
		fields["status"] = msgRequired
	} else if !lifecycle.TaskStatus(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CompleteChecklistRequest represents the JSON body for completing a
// checklist item. The index comes from the URL.
type CompleteChecklistRequest struct {
	Notes string `json:"notes,omitempty"`
}

// Validate always passes; notes are optional.
func (r *CompleteChecklistRequest) Validate() error {
	return nil
}

// OverrideStatusRequest represents the JSON body for the manual status
// override path.
type OverrideStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Validate checks that the target status is present and a defined constant.
func (r *OverrideStatusRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Status) == "" {
		fields["status"] = msgRequired
	} else if !lifecycle.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
