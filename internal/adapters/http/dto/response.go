// Package dto provides the HTTP request/response data transfer objects for
// the inbound adapter layer. All responses share a uniform envelope:
// {"success": bool, "data": ..., "message": ...}.
package dto

import (
	"encoding/json"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a human-readable message.
func OKMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// LifecycleResponse represents a full lifecycle aggregate in HTTP responses.
type LifecycleResponse struct {
	ID                   string             `json:"id"`
	EmployeeID           string             `json:"employee_id"`
	EmployeeName         string             `json:"employee_name,omitempty"`
	EmployeeEmail        string             `json:"employee_email,omitempty"`
	Type                 string             `json:"type"`
	Status               string             `json:"status"`
	StartDate            string             `json:"start_date"`
	TargetCompletionDate string             `json:"target_completion_date"`
	ActualCompletionDate *string            `json:"actual_completion_date,omitempty"`
	InitiatedBy          string             `json:"initiated_by"`
	AssignedHR           string             `json:"assigned_hr"`
	Department           string             `json:"department"`
	RoleID               string             `json:"role_id,omitempty"`
	Progress             int                `json:"progress"`
	Tasks                []TaskResponse     `json:"tasks"`
	Checklist            []ChecklistItem    `json:"checklist"`
	Documents            []Document         `json:"documents"`
	Timeline             []TimelineEntry    `json:"timeline"`
	FinalPayroll         json.RawMessage    `json:"final_payroll,omitempty"`
	Version              int64              `json:"version"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	AssignedTo  string  `json:"assigned_to"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	StartedAt   *string `json:"started_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CompletedBy string  `json:"completed_by,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// ChecklistItem represents a checklist entry in HTTP responses.
type ChecklistItem struct {
	Item        string  `json:"item"`
	Required    bool    `json:"required"`
	Completed   bool    `json:"completed"`
	CompletedBy string  `json:"completed_by,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Document represents a document requirement in HTTP responses.
type Document struct {
	Name       string  `json:"name"`
	Required   bool    `json:"required"`
	Received   bool    `json:"received"`
	ReceivedAt *string `json:"received_at,omitempty"`
}

// TimelineEntry represents an audit record in HTTP responses.
type TimelineEntry struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	PerformedBy string `json:"performed_by"`
	PerformedAt string `json:"performed_at"`
	Status      string `json:"status"`
}

// ToLifecycleResponse converts a lifecycle aggregate to an HTTP response DTO.
func ToLifecycleResponse(l *lifecycle.Lifecycle) LifecycleResponse {
	resp := LifecycleResponse{
		ID:                   l.ID,
		EmployeeID:           l.EmployeeID,
		EmployeeName:         l.EmployeeName,
		EmployeeEmail:        l.EmployeeEmail,
		Type:                 l.Type.String(),
		Status:               l.Status.String(),
		StartDate:            l.StartDate.Format(time.RFC3339),
		TargetCompletionDate: l.TargetCompletionDate.Format(time.RFC3339),
		ActualCompletionDate: formatOptional(l.ActualCompletionDate),
		InitiatedBy:          l.InitiatedBy,
		AssignedHR:           l.AssignedHR,
		Department:           l.Department,
		RoleID:               l.RoleID,
		Progress:             l.Progress(),
		Tasks:                make([]TaskResponse, len(l.Tasks)),
		Checklist:            make([]ChecklistItem, len(l.Checklist)),
		Documents:            make([]Document, len(l.Documents)),
		Timeline:             make([]TimelineEntry, len(l.Timeline)),
		FinalPayroll:         l.FinalPayroll,
		Version:              l.Version,
		CreatedAt:            l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            l.UpdatedAt.Format(time.RFC3339),
	}

	for i := range l.Tasks {
		resp.Tasks[i] = toTaskResponse(&l.Tasks[i])
	}
	for i, c := range l.Checklist {
		resp.Checklist[i] = ChecklistItem{
			Item:        c.Item,
			Required:    c.Required,
			Completed:   c.Completed,
			CompletedBy: c.CompletedBy,
			CompletedAt: formatOptional(c.CompletedAt),
			Notes:       c.Notes,
		}
	}
	for i, d := range l.Documents {
		resp.Documents[i] = Document{
			Name:       d.Name,
			Required:   d.Required,
			Received:   d.Received,
			ReceivedAt: formatOptional(d.ReceivedAt),
		}
	}
	for i, e := range l.Timeline {
		resp.Timeline[i] = TimelineEntry{
			Action:      e.Action,
			Description: e.Description,
			PerformedBy: e.PerformedBy,
			PerformedAt: e.PerformedAt.Format(time.RFC3339),
			Status:      e.Status.String(),
		}
	}

	return resp
}

func toTaskResponse(t *lifecycle.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Type:        t.Type.String(),
		Priority:    t.Priority.String(),
		AssignedTo:  t.AssignedTo,
		Status:      t.Status.String(),
		DueDate:     t.DueDate.Format(time.RFC3339),
		StartedAt:   formatOptional(t.StartedAt),
		CompletedAt: formatOptional(t.CompletedAt),
		CompletedBy: t.CompletedBy,
		Notes:       t.Notes,
	}
}

// LifecycleListResponse represents one page of lifecycles plus pagination
// metadata.
type LifecycleListResponse struct {
	Items []LifecycleResponse `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// ToLifecycleListResponse converts a service listing result to an HTTP
// response DTO.
func ToLifecycleListResponse(list *ports.LifecycleList) LifecycleListResponse {
	items := make([]LifecycleResponse, len(list.Items))
	for i := range list.Items {
		items[i] = ToLifecycleResponse(&list.Items[i])
	}
	return LifecycleListResponse{
		Items: items,
		Total: list.Total,
		Page:  list.Page.Page,
		Limit: list.Page.Limit,
	}
}

// StatsResponse represents aggregate lifecycle counts in HTTP responses.
type StatsResponse struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	Completed      int `json:"completed"`
	Overdue        int `json:"overdue"`
	Onboarding     int `json:"onboarding"`
	Offboarding    int `json:"offboarding"`
	CompletionRate int `json:"completion_rate"`
}

// ToStatsResponse converts domain stats to an HTTP response DTO.
func ToStatsResponse(s lifecycle.Stats) StatsResponse {
	return StatsResponse{
		Total:          s.Total,
		Active:         s.Active,
		Completed:      s.Completed,
		Overdue:        s.Overdue,
		Onboarding:     s.Onboarding,
		Offboarding:    s.Offboarding,
		CompletionRate: s.CompletionRate(),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
