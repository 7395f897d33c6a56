package lifecycle

import "time"

// CompletedEvent is published after a version-guarded save transitions a
// lifecycle into completed. The optimistic guard makes delivery exactly-once:
// when concurrent task completions race, only the save that wins the version
// check observes the completing transition.
type CompletedEvent struct {
	LifecycleID string
	EmployeeID  string
	Type        Type
	Department  string
	CompletedAt time.Time
}
