package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/mocks"
)

func testEvent() lifecycle.CompletedEvent {
	return lifecycle.CompletedEvent{
		LifecycleID: "lc-1",
		EmployeeID:  "emp-42",
		Type:        lifecycle.TypeOffboarding,
		Department:  "Engineering",
		CompletedAt: time.Date(2025, 3, 31, 17, 0, 0, 0, time.UTC),
	}
}

func newTestHandler(t *testing.T) (*OffboardingCompletionHandler, *mocks.MockLifecycleRepository, *mocks.MockUserDirectory, *mocks.MockPayrollClient) {
	t.Helper()
	repo := mocks.NewMockLifecycleRepository(t)
	directory := mocks.NewMockUserDirectory(t)
	payroll := mocks.NewMockPayrollClient(t)

	h := NewOffboardingCompletionHandler(repo, directory, payroll, discardLogger())
	h.now = func() time.Time { return testNow }
	return h, repo, directory, payroll
}

func TestOffboardingCompletionHandler_HandleCompleted(t *testing.T) {
	t.Parallel()

	t.Run("deactivates the employee and stores final payroll", func(t *testing.T) {
		t.Parallel()
		h, repo, directory, payroll := newTestHandler(t)

		event := testEvent()
		breakdown := json.RawMessage(`{"base":4200,"severance":1800}`)
		l := newTestLifecycle(t, lifecycle.TypeOffboarding)
		l.ID = event.LifecycleID

		directory.EXPECT().MarkPendingOffboarding(mock.Anything, "emp-42").Return(nil)
		payroll.EXPECT().CalculateFinalPayroll(mock.Anything, "emp-42", time.March, 2025).
			Return(breakdown, nil)
		repo.EXPECT().Get(mock.Anything, event.LifecycleID).Return(l, nil)
		repo.EXPECT().Update(mock.Anything, l).Return(nil)

		if err := h.HandleCompleted(context.Background(), event); err != nil {
			t.Fatalf("HandleCompleted() error = %v, want nil", err)
		}
		if string(l.FinalPayroll) != string(breakdown) {
			t.Errorf("FinalPayroll = %s, want %s", l.FinalPayroll, breakdown)
		}
	})

	t.Run("ignores non-offboarding events", func(t *testing.T) {
		t.Parallel()
		h, _, _, _ := newTestHandler(t)

		event := testEvent()
		event.Type = lifecycle.TypeOnboarding

		if err := h.HandleCompleted(context.Background(), event); err != nil {
			t.Fatalf("HandleCompleted() error = %v, want nil", err)
		}
	})

	t.Run("directory failure does not skip payroll", func(t *testing.T) {
		t.Parallel()
		h, repo, directory, payroll := newTestHandler(t)

		event := testEvent()
		l := newTestLifecycle(t, lifecycle.TypeOffboarding)
		l.ID = event.LifecycleID

		directory.EXPECT().MarkPendingOffboarding(mock.Anything, "emp-42").
			Return(errors.New("directory 503"))
		payroll.EXPECT().CalculateFinalPayroll(mock.Anything, "emp-42", time.March, 2025).
			Return(json.RawMessage(`{}`), nil)
		repo.EXPECT().Get(mock.Anything, event.LifecycleID).Return(l, nil)
		repo.EXPECT().Update(mock.Anything, l).Return(nil)

		err := h.HandleCompleted(context.Background(), event)
		if !errors.Is(err, domain.ErrDependency) {
			t.Errorf("HandleCompleted() error = %v, want ErrDependency", err)
		}
	})

	t.Run("payroll failure is a dependency error", func(t *testing.T) {
		t.Parallel()
		h, _, directory, payroll := newTestHandler(t)

		event := testEvent()
		directory.EXPECT().MarkPendingOffboarding(mock.Anything, "emp-42").Return(nil)
		payroll.EXPECT().CalculateFinalPayroll(mock.Anything, "emp-42", time.March, 2025).
			Return(nil, errors.New("payroll timeout"))

		err := h.HandleCompleted(context.Background(), event)
		if !errors.Is(err, domain.ErrDependency) {
			t.Errorf("HandleCompleted() error = %v, want ErrDependency", err)
		}
	})

	t.Run("retries the payroll save on version conflict", func(t *testing.T) {
		t.Parallel()
		h, repo, directory, payroll := newTestHandler(t)

		event := testEvent()
		stale := newTestLifecycle(t, lifecycle.TypeOffboarding)
		stale.ID = event.LifecycleID
		fresh := newTestLifecycle(t, lifecycle.TypeOffboarding)
		fresh.ID = event.LifecycleID
		fresh.Version = stale.Version + 1

		directory.EXPECT().MarkPendingOffboarding(mock.Anything, "emp-42").Return(nil)
		payroll.EXPECT().CalculateFinalPayroll(mock.Anything, "emp-42", time.March, 2025).
			Return(json.RawMessage(`{}`), nil)
		repo.EXPECT().Get(mock.Anything, event.LifecycleID).Return(stale, nil).Once()
		repo.EXPECT().Update(mock.Anything, stale).Return(domain.ErrConflict).Once()
		repo.EXPECT().Get(mock.Anything, event.LifecycleID).Return(fresh, nil).Once()
		repo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()

		if err := h.HandleCompleted(context.Background(), event); err != nil {
			t.Fatalf("HandleCompleted() error = %v, want nil", err)
		}
	})
}
