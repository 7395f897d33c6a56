package lifecycle

// TaskStatus represents the state of a single task within a lifecycle.
//
// The machine is pending → in_progress → {completed, cancelled}. Overdue is
// an informational label applied by the sweep when a due date passes; it is
// not a terminal state and an overdue task may still be started or completed.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
	TaskCancelled  TaskStatus = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskOverdue, TaskCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted || s == TaskCancelled
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	return string(s)
}
