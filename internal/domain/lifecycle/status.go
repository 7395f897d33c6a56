package lifecycle

// Status represents the aggregate state of a lifecycle. It is derived from
// task states by the aggregation rule in Lifecycle.recalcStatus, except when
// set through the manual override path.
type Status string

const (
	StatusInitiated  Status = "initiated"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusOnHold     Status = "on_hold"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusInitiated, StatusInProgress, StatusCompleted, StatusCancelled, StatusOnHold:
		return true
	default:
		return false
	}
}

// IsActive reports whether the lifecycle still occupies its
// (employee, type) slot. At most one active lifecycle may exist per pair.
func (s Status) IsActive() bool {
	return s == StatusInitiated || s == StatusInProgress
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
