// Package lifecycle contains the employee lifecycle aggregate: the task
// state machine, checklist tracking, the append-only audit timeline, and the
// status aggregation rule that derives the parent status from task states.
// All mutations go through aggregate methods; persistence and side effects
// live in outer layers.
package lifecycle

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peopleops/lifecycle-service/internal/domain"
)

// targetCompletionDays is the fixed offset from start to the target
// completion date, independent of individual task due dates.
const targetCompletionDays = 30

// Lifecycle is the aggregate root tracking one HR process for one employee.
// It is mutated through whole-aggregate load → modify → save cycles; Version
// is the optimistic-concurrency guard checked by the repository on save.
type Lifecycle struct {
	ID                   string
	EmployeeID           string
	EmployeeName         string
	EmployeeEmail        string
	Type                 Type
	Status               Status
	StartDate            time.Time
	TargetCompletionDate time.Time
	ActualCompletionDate *time.Time
	InitiatedBy          string
	AssignedHR           string
	Department           string
	RoleID               string
	Tasks                []Task
	Checklist            []ChecklistItem
	Documents            []DocumentRequirement
	Timeline             []TimelineEntry
	FinalPayroll         json.RawMessage
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewParams carries the inputs to the standard lifecycle factory.
type NewParams struct {
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string
	Type          Type
	Department    string
	RoleID        string
	InitiatedBy   string
	AssignedHR    string
	StartDate     time.Time // zero value means "now"
}

// Validate checks the required creation fields.
func (p NewParams) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.EmployeeID) == "" {
		fields["employee_id"] = domain.MsgRequired
	}
	if !p.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", p.Type)
	} else if !HasStandardPlan(p.Type) {
		fields["type"] = fmt.Sprintf("no standard task plan for %q", p.Type)
	}
	if strings.TrimSpace(p.Department) == "" {
		fields["department"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.InitiatedBy) == "" {
		fields["initiated_by"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.AssignedHR) == "" {
		fields["assigned_hr"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// NewStandard builds a lifecycle with the fixed five-task plan for the given
// type. All tasks start pending, pre-assigned to the assigned HR operator,
// with due dates at the plan's fixed offsets from the start date. The caller
// is responsible for the one-active-per-(employee, type) invariant before
// persisting.
func NewStandard(p NewParams, now time.Time) (*Lifecycle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := p.StartDate
	if start.IsZero() {
		start = now
	}

	l := &Lifecycle{
		ID:                   uuid.NewString(),
		EmployeeID:           p.EmployeeID,
		EmployeeName:         p.EmployeeName,
		EmployeeEmail:        p.EmployeeEmail,
		Type:                 p.Type,
		Status:               StatusInitiated,
		StartDate:            start,
		TargetCompletionDate: start.AddDate(0, 0, targetCompletionDays),
		InitiatedBy:          p.InitiatedBy,
		AssignedHR:           p.AssignedHR,
		Department:           p.Department,
		RoleID:               p.RoleID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	plan := standardPlans[p.Type]
	l.Tasks = make([]Task, 0, len(plan))
	for _, pt := range plan {
		l.Tasks = append(l.Tasks, Task{
			ID:         uuid.NewString(),
			Title:      pt.title,
			Type:       pt.taskType,
			Priority:   pt.priority,
			AssignedTo: p.AssignedHR,
			Status:     TaskPending,
			DueDate:    start.AddDate(0, 0, pt.dueDays),
		})
	}

	l.AppendTimeline(ActionCreated,
		fmt.Sprintf("%s process initiated for employee %s", p.Type, p.EmployeeID),
		p.InitiatedBy, TimelineSuccess, now)

	return l, nil
}

// recalcStatus applies the status aggregation rule after a mutation. It
// returns true exactly when this call transitioned the lifecycle into
// completed; repeated calls on a completed lifecycle return false, which
// keeps completion-event publication idempotent across saves.
func (l *Lifecycle) recalcStatus(now time.Time) bool {
	total := len(l.Tasks)
	if total == 0 {
		return false
	}

	completed := l.completedTaskCount()

	switch {
	case completed == total && l.Status != StatusCompleted:
		l.Status = StatusCompleted
		done := now
		l.ActualCompletionDate = &done
		return true
	case completed > 0 && l.Status == StatusInitiated:
		l.Status = StatusInProgress
	}
	return false
}

// OverrideStatus sets the status directly, bypassing task aggregation, and
// then re-runs the aggregation rule the way every persistence path does.
// This mirrors the manual-override escape hatch of the original system; see
// DESIGN.md for the open question around it. Returns completedNow=true only
// when the aggregation rule (not the override itself) completed the
// lifecycle.
func (l *Lifecycle) OverrideStatus(status Status, actor, note string, now time.Time) (bool, error) {
	if !status.IsValid() {
		return false, &domain.ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", status)},
		}
	}

	l.Status = status
	if status == StatusCompleted && l.ActualCompletionDate == nil {
		done := now
		l.ActualCompletionDate = &done
	}

	desc := fmt.Sprintf("status set to %s", status)
	if note != "" {
		desc += ": " + note
	}
	l.AppendTimeline(ActionStatusOverridden, desc, actor, TimelineSuccess, now)

	l.UpdatedAt = now
	return l.recalcStatus(now), nil
}

// SetFinalPayroll stores the payroll collaborator's result verbatim for
// later HR review. Offboarding lifecycles only.
func (l *Lifecycle) SetFinalPayroll(data json.RawMessage, now time.Time) {
	l.FinalPayroll = data
	l.AppendTimeline(ActionPayrollCalculated, "final payroll breakdown stored", "system", TimelineSuccess, now)
	l.UpdatedAt = now
}

// Progress returns the rounded completion percentage across tasks,
// yielding 0 for an empty task list.
func (l *Lifecycle) Progress() int {
	if len(l.Tasks) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(l.completedTaskCount()) / float64(len(l.Tasks))))
}

// IsOverdue reports whether an active lifecycle has passed its target
// completion date.
func (l *Lifecycle) IsOverdue(now time.Time) bool {
	return l.Status.IsActive() && l.TargetCompletionDate.Before(now)
}

func (l *Lifecycle) completedTaskCount() int {
	var n int
	for i := range l.Tasks {
		if l.Tasks[i].Status == TaskCompleted {
			n++
		}
	}
	return n
}
