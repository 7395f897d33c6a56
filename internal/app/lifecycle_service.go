// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Services own the load → modify → save cycle for the lifecycle
// aggregate, including optimistic-conflict retries and completion-event
// publication.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleops/lifecycle-service/internal/app/fanout"
	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time check that LifecycleService implements ports.LifecycleService.
var _ ports.LifecycleService = (*LifecycleService)(nil)

// maxSaveAttempts bounds the optimistic-conflict retry loop. Each retry
// reloads the aggregate and replays the mutation against the fresh version.
const maxSaveAttempts = 3

// sweepWorkers bounds the concurrency of the overdue sweep.
const sweepWorkers = 4

// LifecycleService implements ports.LifecycleService. It contains no business
// rules of its own: state transitions live in the lifecycle aggregate, side
// effects in the completion handler. The service coordinates persistence,
// visibility scoping, conflict retries, and event publication.
type LifecycleService struct {
	repo        ports.LifecycleRepository
	directory   ports.UserDirectory
	templates   ports.TemplateCatalog // optional, may be nil
	completions ports.CompletionHandler
	logger      *slog.Logger
	now         func() time.Time
}

// NewLifecycleService creates a LifecycleService. The template catalog is
// optional; pass nil to skip template lookup on creation. A nil logger is
// replaced with a no-op logger.
func NewLifecycleService(
	repo ports.LifecycleRepository,
	directory ports.UserDirectory,
	templates ports.TemplateCatalog,
	completions ports.CompletionHandler,
	logger *slog.Logger,
) *LifecycleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LifecycleService{
		repo:        repo,
		directory:   directory,
		templates:   templates,
		completions: completions,
		logger:      logger,
		now:         time.Now,
	}
}

// Create builds and persists a standard lifecycle for an employee. An active
// lifecycle of the same (employee, type) is a conflict; the repository's
// uniqueness guard backs this check against creation races.
func (s *LifecycleService) Create(ctx context.Context, caller domain.Caller, params lifecycle.NewParams) (*lifecycle.Lifecycle, error) {
	s.logger.InfoContext(ctx, "creating lifecycle",
		slog.String("employee_id", params.EmployeeID),
		slog.String("type", params.Type.String()),
	)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindActive(ctx, params.EmployeeID, params.Type); err == nil {
		return nil, fmt.Errorf("active %s lifecycle exists for employee %s: %w",
			params.Type, params.EmployeeID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking active lifecycle: %w", err)
	}

	s.snapshotEmployee(ctx, &params)

	l, err := lifecycle.NewStandard(params, s.now())
	if err != nil {
		return nil, err
	}

	s.applyTemplates(ctx, l)

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.ErrorContext(ctx, "failed to create lifecycle",
			slog.String("operation", "Create"),
			slog.String("employee_id", params.EmployeeID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return l, nil
}

// snapshotEmployee copies the directory's name and email onto the params so
// the listing surface can search without a directory join. Directory
// failures are logged and do not block creation.
func (s *LifecycleService) snapshotEmployee(ctx context.Context, params *lifecycle.NewParams) {
	if params.EmployeeName != "" || params.EmployeeEmail != "" {
		return
	}
	record, err := s.directory.GetEmployee(ctx, params.EmployeeID)
	if err != nil {
		s.logger.WarnContext(ctx, "employee snapshot unavailable",
			slog.String("operation", "Create"),
			slog.String("employee_id", params.EmployeeID),
			slog.Any("error", err),
		)
		return
	}
	params.EmployeeName = record.Name
	params.EmployeeEmail = record.Email
}

// applyTemplates appends department/role-scoped checklist and document
// templates when the catalog has any. The standard plan never depends on a
// template existing, so failures only log.
func (s *LifecycleService) applyTemplates(ctx context.Context, l *lifecycle.Lifecycle) {
	if s.templates == nil {
		return
	}
	tpl, err := s.templates.ProcessTemplates(ctx, l.Department, l.RoleID, l.Type)
	if err != nil {
		s.logger.WarnContext(ctx, "template catalog unavailable",
			slog.String("operation", "Create"),
			slog.String("department", l.Department),
			slog.Any("error", err),
		)
		return
	}
	if tpl == nil {
		return
	}
	l.Checklist = append(l.Checklist, tpl.Checklist...)
	l.Documents = append(l.Documents, tpl.Documents...)
}

// Get returns a single lifecycle by ID, subject to visibility scoping.
func (s *LifecycleService) Get(ctx context.Context, caller domain.Caller, id string) (*lifecycle.Lifecycle, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkVisibility(caller, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns a page of lifecycles. Callers below the HR role level are
// scoped to their own department regardless of the requested filter.
func (s *LifecycleService) List(ctx context.Context, caller domain.Caller, filter lifecycle.Filter, page lifecycle.Page) (*ports.LifecycleList, error) {
	filter = s.scopeFilter(caller, filter)
	page = page.Normalize()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list lifecycles",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.LifecycleList{Items: items, Total: total, Page: page}, nil
}

// Stats returns aggregate counts over lifecycles visible to the caller.
func (s *LifecycleService) Stats(ctx context.Context, caller domain.Caller) (lifecycle.Stats, error) {
	filter := s.scopeFilter(caller, lifecycle.Filter{})
	return s.repo.Stats(ctx, filter, s.now())
}

// UpdateTask applies a task transition inside an optimistic-retry save loop
// and publishes the completion event when the save that completed the final
// offboarding task wins the version check.
func (s *LifecycleService) UpdateTask(ctx context.Context, caller domain.Caller, id, taskID string, upd lifecycle.TaskUpdate) (*lifecycle.Lifecycle, error) {
	s.logger.InfoContext(ctx, "updating task",
		slog.String("lifecycle_id", id),
		slog.String("task_id", taskID),
		slog.String("status", upd.Status.String()),
	)

	return s.saveWithRetry(ctx, caller, id, func(l *lifecycle.Lifecycle) (bool, error) {
		return l.UpdateTask(taskID, upd, s.now())
	})
}

// CompleteChecklistItem marks a checklist item complete by index.
func (s *LifecycleService) CompleteChecklistItem(ctx context.Context, caller domain.Caller, id string, index int, notes string) (*lifecycle.Lifecycle, error) {
	s.logger.InfoContext(ctx, "completing checklist item",
		slog.String("lifecycle_id", id),
		slog.Int("index", index),
	)

	return s.saveWithRetry(ctx, caller, id, func(l *lifecycle.Lifecycle) (bool, error) {
		return false, l.CompleteChecklistItem(index, caller.ID, notes, s.now())
	})
}

// OverrideStatus sets the lifecycle status directly. The aggregation rule
// still runs afterwards, matching the behavior of the persistence hook this
// path descends from.
func (s *LifecycleService) OverrideStatus(ctx context.Context, caller domain.Caller, id string, status lifecycle.Status, note string) (*lifecycle.Lifecycle, error) {
	s.logger.InfoContext(ctx, "overriding lifecycle status",
		slog.String("lifecycle_id", id),
		slog.String("status", status.String()),
	)

	return s.saveWithRetry(ctx, caller, id, func(l *lifecycle.Lifecycle) (bool, error) {
		return l.OverrideStatus(status, caller.ID, note, s.now())
	})
}

// saveWithRetry runs a load → mutate → save cycle, reloading and replaying
// the mutation on version conflicts. The completion event is published only
// after the winning save, which makes it exactly-once per lifecycle
// completion even when concurrent task completions race.
func (s *LifecycleService) saveWithRetry(ctx context.Context, caller domain.Caller, id string, mutate func(*lifecycle.Lifecycle) (bool, error)) (*lifecycle.Lifecycle, error) {
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		l, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.checkVisibility(caller, l); err != nil {
			return nil, err
		}

		completedNow, err := mutate(l)
		if err != nil {
			return nil, err
		}

		err = s.repo.Update(ctx, l)
		if errors.Is(err, domain.ErrConflict) && attempt < maxSaveAttempts {
			s.logger.WarnContext(ctx, "version conflict, retrying save",
				slog.String("lifecycle_id", id),
				slog.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to save lifecycle",
				slog.String("operation", "saveWithRetry"),
				slog.String("lifecycle_id", id),
				slog.Any("error", err),
			)
			return nil, err
		}

		if completedNow {
			s.publishCompletion(ctx, l)
		}
		return l, nil
	}
	return nil, fmt.Errorf("saving lifecycle %s: %w", id, domain.ErrConflict)
}

// publishCompletion hands the completion event to the handler. Offboarding
// is the only type with downstream effects; handler failures are logged and
// never fail the transition that produced the event.
func (s *LifecycleService) publishCompletion(ctx context.Context, l *lifecycle.Lifecycle) {
	if l.Type != lifecycle.TypeOffboarding {
		return
	}

	event := lifecycle.CompletedEvent{
		LifecycleID: l.ID,
		EmployeeID:  l.EmployeeID,
		Type:        l.Type,
		Department:  l.Department,
		CompletedAt: *l.ActualCompletionDate,
	}

	if err := s.completions.HandleCompleted(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "completion handler failed",
			slog.String("operation", "publishCompletion"),
			slog.String("lifecycle_id", l.ID),
			slog.String("employee_id", l.EmployeeID),
			slog.Any("error", err),
		)
	}
}

// SweepOverdue marks past-due tasks across active lifecycles as overdue.
// Lifecycles are processed with bounded concurrency; per-lifecycle failures
// are logged and do not stop the sweep.
func (s *LifecycleService) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing active lifecycles: %w", err)
	}

	results := fanout.Run(ctx, sweepWorkers, active, func(ctx context.Context, l lifecycle.Lifecycle) (bool, error) {
		return s.sweepOne(ctx, l.ID, now)
	})

	var touched int
	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "overdue sweep failed for lifecycle",
				slog.String("lifecycle_id", active[i].ID),
				slog.Any("error", r.Err),
			)
			continue
		}
		if r.Value {
			touched++
		}
	}
	return touched, nil
}

// sweepOne reloads a lifecycle and persists overdue markings, retrying the
// version guard once the way saveWithRetry does for user mutations.
func (s *LifecycleService) sweepOne(ctx context.Context, id string, now time.Time) (bool, error) {
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		l, err := s.repo.Get(ctx, id)
		if err != nil {
			return false, err
		}

		if l.SweepOverdueTasks(now) == 0 {
			return false, nil
		}

		err = s.repo.Update(ctx, l)
		if errors.Is(err, domain.ErrConflict) && attempt < maxSaveAttempts {
			continue
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	return false, domain.ErrConflict
}

// checkVisibility enforces department scoping for callers below the HR
// role level.
func (s *LifecycleService) checkVisibility(caller domain.Caller, l *lifecycle.Lifecycle) error {
	if caller.SeesAllDepartments() || l.Department == caller.Department {
		return nil
	}
	return fmt.Errorf("lifecycle %s outside caller department: %w", l.ID, domain.ErrForbidden)
}

// scopeFilter pins the department filter to the caller's own department for
// callers below the HR role level.
func (s *LifecycleService) scopeFilter(caller domain.Caller, filter lifecycle.Filter) lifecycle.Filter {
	if !caller.SeesAllDepartments() {
		filter.Department = caller.Department
	}
	return filter
}
