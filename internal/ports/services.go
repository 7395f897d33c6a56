package ports

import (
	"context"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

// LifecycleService defines the service port for employee lifecycle
// operations. Implemented by the application layer; called by inbound
// adapters (handlers). The caller identity is used only for visibility
// scoping — the authorization decision itself is made upstream.
type LifecycleService interface {
	// Create builds and persists a standard lifecycle for an employee.
	// Returns domain.ErrConflict if an active lifecycle of the same
	// (employee, type) already exists, and domain.ErrValidation for missing
	// required fields.
	Create(ctx context.Context, caller domain.Caller, params lifecycle.NewParams) (*lifecycle.Lifecycle, error)

	// Get returns a single lifecycle by ID.
	// Returns domain.ErrNotFound if it does not exist, and
	// domain.ErrForbidden when the caller's visibility does not cover it.
	Get(ctx context.Context, caller domain.Caller, id string) (*lifecycle.Lifecycle, error)

	// List returns a page of lifecycles matching the filter. Callers below
	// the HR role level are scoped to their own department regardless of the
	// department filter.
	List(ctx context.Context, caller domain.Caller, filter lifecycle.Filter, page lifecycle.Page) (*LifecycleList, error)

	// Stats returns aggregate counts over lifecycles visible to the caller.
	Stats(ctx context.Context, caller domain.Caller) (lifecycle.Stats, error)

	// UpdateTask applies a task state-machine transition and saves the
	// aggregate under its optimistic version guard, retrying on conflicts.
	// When the transition completes the final task of an offboarding
	// lifecycle, the completion event is published exactly once.
	UpdateTask(ctx context.Context, caller domain.Caller, id, taskID string, upd lifecycle.TaskUpdate) (*lifecycle.Lifecycle, error)

	// CompleteChecklistItem marks a checklist item complete by index.
	// Returns domain.ErrNotFound for an out-of-range index. Checklist state
	// never influences the lifecycle status.
	CompleteChecklistItem(ctx context.Context, caller domain.Caller, id string, index int, notes string) (*lifecycle.Lifecycle, error)

	// OverrideStatus sets the lifecycle status directly, bypassing task
	// aggregation. Kept for administrative correction; see DESIGN.md.
	OverrideStatus(ctx context.Context, caller domain.Caller, id string, status lifecycle.Status, note string) (*lifecycle.Lifecycle, error)

	// SweepOverdue marks past-due tasks across active lifecycles as overdue
	// and returns the number of lifecycles touched.
	SweepOverdue(ctx context.Context, now time.Time) (int, error)
}

// LifecycleList is one page of listing results together with the total
// match count before pagination.
type LifecycleList struct {
	Items []lifecycle.Lifecycle
	Total int
	Page  lifecycle.Page
}

// CompletionHandler consumes lifecycle completion events. The application
// layer publishes an event only after a successful version-guarded save, so
// a handler observes each completion exactly once. Handler failures are
// logged by the implementation and must never fail the state transition
// that produced the event.
type CompletionHandler interface {
	HandleCompleted(ctx context.Context, event lifecycle.CompletedEvent) error
}
