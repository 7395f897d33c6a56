package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time check that OffboardingCompletionHandler implements
// ports.CompletionHandler.
var _ ports.CompletionHandler = (*OffboardingCompletionHandler)(nil)

// OffboardingCompletionHandler runs the downstream effects of a completed
// offboarding: the employee's directory account is marked pending
// offboarding, then the final payroll breakdown is requested and stored on
// the lifecycle. Both collaborators are external; their failures are wrapped
// in domain.ErrDependency so the publisher can log them without failing the
// task transition that completed the lifecycle.
type OffboardingCompletionHandler struct {
	repo      ports.LifecycleRepository
	directory ports.UserDirectory
	payroll   ports.PayrollClient
	logger    *slog.Logger
	now       func() time.Time
}

// NewOffboardingCompletionHandler creates an OffboardingCompletionHandler.
// A nil logger is replaced with a no-op logger.
func NewOffboardingCompletionHandler(
	repo ports.LifecycleRepository,
	directory ports.UserDirectory,
	payroll ports.PayrollClient,
	logger *slog.Logger,
) *OffboardingCompletionHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OffboardingCompletionHandler{
		repo:      repo,
		directory: directory,
		payroll:   payroll,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleCompleted deactivates the employee and stores the final payroll
// breakdown. The two effects are independent: a directory failure does not
// skip the payroll calculation. The first failure is returned (wrapped in
// domain.ErrDependency) after both have been attempted.
func (h *OffboardingCompletionHandler) HandleCompleted(ctx context.Context, event lifecycle.CompletedEvent) error {
	if event.Type != lifecycle.TypeOffboarding {
		return nil
	}

	h.logger.InfoContext(ctx, "handling offboarding completion",
		slog.String("lifecycle_id", event.LifecycleID),
		slog.String("employee_id", event.EmployeeID),
	)

	var firstErr error

	if err := h.directory.MarkPendingOffboarding(ctx, event.EmployeeID); err != nil {
		firstErr = fmt.Errorf("marking employee %s pending offboarding: %w: %w",
			event.EmployeeID, domain.ErrDependency, err)
		h.logger.ErrorContext(ctx, "directory deactivation failed",
			slog.String("operation", "HandleCompleted"),
			slog.String("employee_id", event.EmployeeID),
			slog.Any("error", err),
		)
	}

	if err := h.storeFinalPayroll(ctx, event); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		h.logger.ErrorContext(ctx, "final payroll storage failed",
			slog.String("operation", "HandleCompleted"),
			slog.String("lifecycle_id", event.LifecycleID),
			slog.Any("error", err),
		)
	}

	return firstErr
}

// storeFinalPayroll requests the final payroll breakdown for the completion
// month and persists it on the lifecycle under the optimistic version guard,
// retrying on conflicts the way user mutations do.
func (h *OffboardingCompletionHandler) storeFinalPayroll(ctx context.Context, event lifecycle.CompletedEvent) error {
	year, month, _ := event.CompletedAt.Date()

	data, err := h.payroll.CalculateFinalPayroll(ctx, event.EmployeeID, month, year)
	if err != nil {
		return fmt.Errorf("calculating final payroll for employee %s: %w: %w",
			event.EmployeeID, domain.ErrDependency, err)
	}

	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		l, err := h.repo.Get(ctx, event.LifecycleID)
		if err != nil {
			return fmt.Errorf("loading lifecycle %s: %w", event.LifecycleID, err)
		}

		l.SetFinalPayroll(data, h.now())

		err = h.repo.Update(ctx, l)
		if errors.Is(err, domain.ErrConflict) && attempt < maxSaveAttempts {
			continue
		}
		if err != nil {
			return fmt.Errorf("saving final payroll on lifecycle %s: %w", event.LifecycleID, err)
		}
		return nil
	}
	return fmt.Errorf("saving final payroll on lifecycle %s: %w", event.LifecycleID, domain.ErrConflict)
}
