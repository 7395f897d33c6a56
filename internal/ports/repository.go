package ports

import (
	"context"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

// LifecycleRepository is the persistence port for the lifecycle aggregate.
// Lifecycles are stored and loaded whole; they are never physically deleted
// (completed and cancelled are final logical states).
type LifecycleRepository interface {
	// Create persists a new lifecycle.
	Create(ctx context.Context, l *lifecycle.Lifecycle) error

	// Get loads a lifecycle by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*lifecycle.Lifecycle, error)

	// Update saves a mutated lifecycle under its optimistic version guard:
	// the stored row must still carry l.Version, otherwise
	// domain.ErrConflict is returned and nothing is written. On success the
	// stored and in-memory versions are incremented.
	Update(ctx context.Context, l *lifecycle.Lifecycle) error

	// FindActive returns the active (initiated or in-progress) lifecycle for
	// the (employee, type) pair, or domain.ErrNotFound when none exists.
	FindActive(ctx context.Context, employeeID string, t lifecycle.Type) (*lifecycle.Lifecycle, error)

	// List returns one page of lifecycles matching the filter plus the total
	// match count before pagination.
	List(ctx context.Context, filter lifecycle.Filter, page lifecycle.Page) ([]lifecycle.Lifecycle, int, error)

	// ListActive returns all lifecycles in an active status, used by the
	// overdue sweep.
	ListActive(ctx context.Context) ([]lifecycle.Lifecycle, error)

	// Stats aggregates counts over lifecycles matching the filter. Overdue
	// counting is evaluated against the given instant.
	Stats(ctx context.Context, filter lifecycle.Filter, now time.Time) (lifecycle.Stats, error)
}
