// Package memory provides an in-memory implementation of the lifecycle
// repository. It backs the local profile and the service-level tests; the
// postgres adapter is the production store. The version guard semantics are
// identical to the postgres implementation so the optimistic-retry paths
// behave the same against either store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time check that Repository implements ports.LifecycleRepository.
var _ ports.LifecycleRepository = (*Repository)(nil)

// Repository is a mutex-guarded in-memory lifecycle store. All reads return
// deep copies so callers can mutate aggregates freely between saves.
type Repository struct {
	mu    sync.RWMutex
	items map[string]*lifecycle.Lifecycle
	now   func() time.Time
}

// New creates an empty Repository.
func New() *Repository {
	return &Repository{
		items: make(map[string]*lifecycle.Lifecycle),
		now:   time.Now,
	}
}

// Create persists a new lifecycle. An existing active lifecycle for the same
// (employee, type) pair is a conflict; this backs the service's pre-check
// against creation races.
func (r *Repository) Create(_ context.Context, l *lifecycle.Lifecycle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[l.ID]; ok {
		return fmt.Errorf("lifecycle %s exists: %w", l.ID, domain.ErrConflict)
	}
	for _, existing := range r.items {
		if existing.EmployeeID == l.EmployeeID && existing.Type == l.Type && existing.Status.IsActive() {
			return fmt.Errorf("active %s lifecycle exists for employee %s: %w",
				l.Type, l.EmployeeID, domain.ErrConflict)
		}
	}

	r.items[l.ID] = clone(l)
	return nil
}

// Get loads a lifecycle by ID.
func (r *Repository) Get(_ context.Context, id string) (*lifecycle.Lifecycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("lifecycle %s: %w", id, domain.ErrNotFound)
	}
	return clone(l), nil
}

// Update saves a mutated lifecycle under the optimistic version guard. The
// stored aggregate must still carry the version the caller loaded; otherwise
// nothing is written and domain.ErrConflict is returned.
func (r *Repository) Update(_ context.Context, l *lifecycle.Lifecycle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[l.ID]
	if !ok {
		return fmt.Errorf("lifecycle %s: %w", l.ID, domain.ErrNotFound)
	}
	if stored.Version != l.Version {
		return fmt.Errorf("lifecycle %s version %d is stale: %w", l.ID, l.Version, domain.ErrConflict)
	}

	l.Version++
	r.items[l.ID] = clone(l)
	return nil
}

// FindActive returns the active lifecycle for the (employee, type) pair.
func (r *Repository) FindActive(_ context.Context, employeeID string, t lifecycle.Type) (*lifecycle.Lifecycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.items {
		if l.EmployeeID == employeeID && l.Type == t && l.Status.IsActive() {
			return clone(l), nil
		}
	}
	return nil, fmt.Errorf("active %s lifecycle for employee %s: %w", t, employeeID, domain.ErrNotFound)
}

// List returns one page of lifecycles matching the filter plus the total
// match count.
func (r *Repository) List(_ context.Context, filter lifecycle.Filter, page lifecycle.Page) ([]lifecycle.Lifecycle, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	matched := make([]*lifecycle.Lifecycle, 0, len(r.items))
	for _, l := range r.items {
		if matches(l, filter, now) {
			matched = append(matched, l)
		}
	}

	sortLifecycles(matched, page)

	total := len(matched)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	out := make([]lifecycle.Lifecycle, 0, end-start)
	for _, l := range matched[start:end] {
		out = append(out, *clone(l))
	}
	return out, total, nil
}

// ListActive returns all lifecycles in an active status.
func (r *Repository) ListActive(_ context.Context) ([]lifecycle.Lifecycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lifecycle.Lifecycle, 0)
	for _, l := range r.items {
		if l.Status.IsActive() {
			out = append(out, *clone(l))
		}
	}
	return out, nil
}

// Stats aggregates counts over lifecycles matching the filter.
func (r *Repository) Stats(_ context.Context, filter lifecycle.Filter, now time.Time) (lifecycle.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats lifecycle.Stats
	for _, l := range r.items {
		if !matches(l, filter, now) {
			continue
		}
		stats.Total++
		if l.Status.IsActive() {
			stats.Active++
		}
		if l.Status == lifecycle.StatusCompleted {
			stats.Completed++
		}
		if l.IsOverdue(now) {
			stats.Overdue++
		}
		switch l.Type {
		case lifecycle.TypeOnboarding:
			stats.Onboarding++
		case lifecycle.TypeOffboarding:
			stats.Offboarding++
		}
	}
	return stats, nil
}

func matches(l *lifecycle.Lifecycle, filter lifecycle.Filter, now time.Time) bool {
	if filter.Status != "" && l.Status != filter.Status {
		return false
	}
	if filter.Type != "" && l.Type != filter.Type {
		return false
	}
	if filter.Department != "" && l.Department != filter.Department {
		return false
	}
	if filter.OverdueOnly && !l.IsOverdue(now) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(l.EmployeeName), needle) &&
			!strings.Contains(strings.ToLower(l.EmployeeEmail), needle) &&
			!strings.Contains(strings.ToLower(l.EmployeeID), needle) {
			return false
		}
	}
	return true
}

func sortLifecycles(items []*lifecycle.Lifecycle, page lifecycle.Page) {
	less := func(a, b *lifecycle.Lifecycle) bool {
		switch page.SortBy {
		case lifecycle.SortByStartDate:
			return a.StartDate.Before(b.StartDate)
		case lifecycle.SortByTargetDate:
			return a.TargetCompletionDate.Before(b.TargetCompletionDate)
		case lifecycle.SortByStatus:
			return a.Status < b.Status
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if page.SortOrder == "asc" {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}

// clone deep-copies a lifecycle so stored state never aliases caller state.
func clone(l *lifecycle.Lifecycle) *lifecycle.Lifecycle {
	c := *l

	c.Tasks = append([]lifecycle.Task(nil), l.Tasks...)
	for i := range c.Tasks {
		c.Tasks[i].StartedAt = cloneTime(l.Tasks[i].StartedAt)
		c.Tasks[i].CompletedAt = cloneTime(l.Tasks[i].CompletedAt)
	}

	c.Checklist = append([]lifecycle.ChecklistItem(nil), l.Checklist...)
	for i := range c.Checklist {
		c.Checklist[i].CompletedAt = cloneTime(l.Checklist[i].CompletedAt)
	}

	c.Documents = append([]lifecycle.DocumentRequirement(nil), l.Documents...)
	for i := range c.Documents {
		c.Documents[i].ReceivedAt = cloneTime(l.Documents[i].ReceivedAt)
	}

	c.Timeline = append([]lifecycle.TimelineEntry(nil), l.Timeline...)
	c.ActualCompletionDate = cloneTime(l.ActualCompletionDate)

	if l.FinalPayroll != nil {
		c.FinalPayroll = append([]byte(nil), l.FinalPayroll...)
	}

	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
