package lifecycle

import "time"

// TimelineStatus classifies the outcome recorded by a timeline entry.
type TimelineStatus string

const (
	TimelineSuccess TimelineStatus = "success"
	TimelineWarning TimelineStatus = "warning"
	TimelineError   TimelineStatus = "error"
)

// IsValid returns true if the status is one of the defined constants.
func (s TimelineStatus) IsValid() bool {
	switch s {
	case TimelineSuccess, TimelineWarning, TimelineError:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s TimelineStatus) String() string {
	return string(s)
}

// TimelineEntry is one append-only audit record on a lifecycle. Entries are
// never mutated or removed and are ordered by append sequence.
type TimelineEntry struct {
	Action      string         `json:"action"`
	Description string         `json:"description"`
	PerformedBy string         `json:"performed_by"`
	PerformedAt time.Time      `json:"performed_at"`
	Status      TimelineStatus `json:"status"`
}

// Timeline entry actions used by the aggregate's own mutations.
const (
	ActionCreated            = "Lifecycle Created"
	ActionTaskUpdated        = "Task Updated"
	ActionChecklistCompleted = "Checklist Item Completed"
	ActionStatusOverridden   = "Status Updated"
	ActionTasksOverdue       = "Tasks Marked Overdue"
	ActionPayrollCalculated  = "Final Payroll Calculated"
)

// AppendTimeline records an audit entry with a server-assigned timestamp.
// Every mutating operation in this subsystem uses it as its audit record.
func (l *Lifecycle) AppendTimeline(action, description, performedBy string, status TimelineStatus, now time.Time) {
	if !status.IsValid() {
		status = TimelineSuccess
	}
	l.Timeline = append(l.Timeline, TimelineEntry{
		Action:      action,
		Description: description,
		PerformedBy: performedBy,
		PerformedAt: now,
		Status:      status,
	})
}
