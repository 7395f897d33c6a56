package lifecycle

import (
	"fmt"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
)

// Task is a unit of work inside a lifecycle. Tasks are created in a batch of
// exactly five by the standard factory and are only addressable through
// their parent lifecycle.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        TaskType   `json:"type"`
	Priority    Priority   `json:"priority"`
	AssignedTo  string     `json:"assigned_to"`
	Status      TaskStatus `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// TaskUpdate describes a requested task transition.
type TaskUpdate struct {
	Status  TaskStatus
	ActorID string
	Notes   string
}

// UpdateTask applies a state-machine transition to the task with the given ID
// and re-runs status aggregation. It returns completedNow=true exactly when
// this transition completed the final task and flipped the lifecycle to
// completed.
//
// Returns domain.ErrNotFound for an unknown task ID, a validation error for
// a disallowed target state, and domain.ErrConflict when the task is already
// in a terminal state. On any error the lifecycle is unchanged.
func (l *Lifecycle) UpdateTask(taskID string, upd TaskUpdate, now time.Time) (completedNow bool, err error) {
	task := l.taskByID(taskID)
	if task == nil {
		return false, fmt.Errorf("task not found: %w", domain.ErrNotFound)
	}

	if err := validateTaskTransition(task.Status, upd); err != nil {
		return false, err
	}

	switch upd.Status {
	case TaskInProgress:
		if task.StartedAt == nil {
			started := now
			task.StartedAt = &started
		}
	case TaskCompleted:
		completed := now
		task.CompletedAt = &completed
		task.CompletedBy = upd.ActorID
	case TaskCancelled:
		// No extra bookkeeping beyond the status change.
	}
	task.Status = upd.Status
	if upd.Notes != "" {
		task.Notes = upd.Notes
	}

	l.AppendTimeline(ActionTaskUpdated,
		fmt.Sprintf("task %q moved to %s", task.Title, upd.Status),
		upd.ActorID, TimelineSuccess, now)

	l.UpdatedAt = now
	return l.recalcStatus(now), nil
}

// validateTaskTransition enforces the task state machine rules.
func validateTaskTransition(current TaskStatus, upd TaskUpdate) error {
	if !upd.Status.IsValid() {
		return &domain.ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", upd.Status)},
		}
	}

	if current.IsTerminal() {
		return fmt.Errorf("task already %s: %w", current, domain.ErrConflict)
	}

	switch upd.Status {
	case TaskInProgress, TaskCancelled:
		return nil
	case TaskCompleted:
		if upd.ActorID == "" {
			return &domain.ValidationError{
				Fields: map[string]string{"completed_by": domain.MsgRequired},
			}
		}
		return nil
	default:
		// pending and overdue are not transition targets; overdue is applied
		// only by the sweep.
		return &domain.ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("cannot transition to %q", upd.Status)},
		}
	}
}

// SweepOverdueTasks marks every non-terminal task whose due date has passed
// as overdue. It returns the number of tasks changed, appending a single
// warning timeline entry when at least one task was marked.
func (l *Lifecycle) SweepOverdueTasks(now time.Time) int {
	var marked int
	for i := range l.Tasks {
		t := &l.Tasks[i]
		if t.Status.IsTerminal() || t.Status == TaskOverdue {
			continue
		}
		if t.DueDate.Before(now) {
			t.Status = TaskOverdue
			marked++
		}
	}
	if marked > 0 {
		l.AppendTimeline(ActionTasksOverdue,
			fmt.Sprintf("%d task(s) past due date", marked),
			"system", TimelineWarning, now)
		l.UpdatedAt = now
	}
	return marked
}

func (l *Lifecycle) taskByID(id string) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}
