package dto

import (
	"testing"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

var testTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testLifecycle(t *testing.T) *lifecycle.Lifecycle {
	t.Helper()
	l, err := lifecycle.NewStandard(lifecycle.NewParams{
		EmployeeID:   "emp-42",
		EmployeeName: "Ada Okafor",
		Type:         lifecycle.TypeOnboarding,
		Department:   "Engineering",
		InitiatedBy:  "mgr-1",
		AssignedHR:   "hr-1",
	}, testTime)
	if err != nil {
		t.Fatalf("NewStandard() error = %v", err)
	}
	return l
}

func TestToLifecycleResponse(t *testing.T) {
	t.Parallel()

	l := testLifecycle(t)
	l.Checklist = []lifecycle.ChecklistItem{{Item: "Issue badge", Required: true}}

	resp := ToLifecycleResponse(l)

	if resp.ID != l.ID {
		t.Errorf("ID = %q, want %q", resp.ID, l.ID)
	}
	if resp.Type != "onboarding" || resp.Status != "initiated" {
		t.Errorf("Type/Status = %q/%q, want onboarding/initiated", resp.Type, resp.Status)
	}
	if len(resp.Tasks) != 5 {
		t.Fatalf("len(Tasks) = %d, want 5", len(resp.Tasks))
	}
	if resp.Tasks[0].Status != "pending" {
		t.Errorf("Tasks[0].Status = %q, want pending", resp.Tasks[0].Status)
	}
	if resp.Tasks[0].StartedAt != nil {
		t.Errorf("Tasks[0].StartedAt = %v, want nil", resp.Tasks[0].StartedAt)
	}
	if resp.Progress != 0 {
		t.Errorf("Progress = %d, want 0", resp.Progress)
	}
	if len(resp.Checklist) != 1 || resp.Checklist[0].Item != "Issue badge" {
		t.Errorf("Checklist = %+v, want one 'Issue badge' item", resp.Checklist)
	}
	if len(resp.Timeline) != 1 {
		t.Fatalf("len(Timeline) = %d, want 1", len(resp.Timeline))
	}
	if resp.Timeline[0].Action != lifecycle.ActionCreated {
		t.Errorf("Timeline[0].Action = %q, want %q", resp.Timeline[0].Action, lifecycle.ActionCreated)
	}
	if resp.StartDate != "2025-03-10T09:00:00Z" {
		t.Errorf("StartDate = %q, want RFC 3339 UTC", resp.StartDate)
	}
	if resp.ActualCompletionDate != nil {
		t.Errorf("ActualCompletionDate = %v, want nil", resp.ActualCompletionDate)
	}
}

func TestToLifecycleListResponse(t *testing.T) {
	t.Parallel()

	l := testLifecycle(t)
	list := &ports.LifecycleList{
		Items: []lifecycle.Lifecycle{*l},
		Total: 7,
		Page:  lifecycle.Page{Page: 2, Limit: 5},
	}

	resp := ToLifecycleListResponse(list)

	if len(resp.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(resp.Items))
	}
	if resp.Total != 7 || resp.Page != 2 || resp.Limit != 5 {
		t.Errorf("Total/Page/Limit = %d/%d/%d, want 7/2/5", resp.Total, resp.Page, resp.Limit)
	}
}

func TestToStatsResponse(t *testing.T) {
	t.Parallel()

	resp := ToStatsResponse(lifecycle.Stats{
		Total: 8, Active: 4, Completed: 2, Overdue: 1, Onboarding: 5, Offboarding: 3,
	})

	if resp.Total != 8 || resp.Completed != 2 {
		t.Errorf("Total/Completed = %d/%d, want 8/2", resp.Total, resp.Completed)
	}
	if resp.CompletionRate != 25 {
		t.Errorf("CompletionRate = %d, want 25", resp.CompletionRate)
	}
}
