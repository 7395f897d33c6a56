package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/peopleops/lifecycle-service/internal/adapters/http/dto"
	"github.com/peopleops/lifecycle-service/internal/adapters/http/handlers"
	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
	"github.com/peopleops/lifecycle-service/mocks"
)

func newLifecycleHandler(t *testing.T) (*handlers.LifecycleHandler, *mocks.MockLifecycleService) {
	t.Helper()
	svc := mocks.NewMockLifecycleService(t)
	return handlers.NewLifecycleHandler(svc), svc
}

// --- Create ---

func TestCreate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	l := validLifecycle(t)
	svc.EXPECT().Create(mock.Anything, hrCaller(), mock.MatchedBy(func(p lifecycle.NewParams) bool {
		return p.EmployeeID == "emp-42" && p.Type == lifecycle.TypeOnboarding
	})).Return(l, nil)

	body := jsonBody(t, dto.CreateLifecycleRequest{
		EmployeeID:  "emp-42",
		Type:        "onboarding",
		Department:  "Engineering",
		InitiatedBy: "mgr-1",
		AssignedHR:  "hr-1",
	})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPost, "/api/v1/lifecycles", body))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.Envelope](t, rec)
	if !resp.Success {
		t.Error("Success = false, want true")
	}
}

func TestCreate_MissingCallerHeader(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	body := jsonBody(t, dto.CreateLifecycleRequest{EmployeeID: "emp-42"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lifecycles", body)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreate_InvalidBody(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPost, "/api/v1/lifecycles",
		jsonBody(t, dto.CreateLifecycleRequest{Type: "sabbatical"})))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Success {
		t.Error("Success = true, want false")
	}
	if len(resp.Errors) == 0 {
		t.Error("Errors is empty, want field details")
	}
}

func TestCreate_Conflict(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	svc.EXPECT().Create(mock.Anything, hrCaller(), mock.Anything).
		Return(nil, fmt.Errorf("active lifecycle exists: %w", domain.ErrConflict))

	body := jsonBody(t, dto.CreateLifecycleRequest{
		EmployeeID:  "emp-42",
		Type:        "onboarding",
		Department:  "Engineering",
		InitiatedBy: "mgr-1",
		AssignedHR:  "hr-1",
	})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPost, "/api/v1/lifecycles", body))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- Get ---

func TestGet_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	l := validLifecycle(t)
	svc.EXPECT().Get(mock.Anything, hrCaller(), l.ID).Return(l, nil)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/lifecycles/"+l.ID, nil))
	req = withChiParams(req, map[string]string{"id": l.ID})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGet_Forbidden(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	svc.EXPECT().Get(mock.Anything, hrCaller(), "lc-1").
		Return(nil, fmt.Errorf("outside caller department: %w", domain.ErrForbidden))

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/lifecycles/lc-1", nil))
	req = withChiParams(req, map[string]string{"id": "lc-1"})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

// --- List ---

func TestList_WithFilters(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	svc.EXPECT().List(mock.Anything, hrCaller(),
		lifecycle.Filter{Status: lifecycle.StatusInProgress, Department: "Engineering"},
		lifecycle.Page{Page: 2, Limit: 10},
	).Return(&ports.LifecycleList{Page: lifecycle.Page{Page: 2, Limit: 10}}, nil)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet,
		"/api/v1/lifecycles?status=in_progress&department=Engineering&page=2&limit=10", nil))
	h.List(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.Envelope](t, rec)
	if !resp.Success {
		t.Error("Success = false, want true")
	}
}

func TestList_InvalidStatusFilter(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/lifecycles?status=bad", nil))
	h.List(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Stats ---

func TestStats_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	svc.EXPECT().Stats(mock.Anything, hrCaller()).
		Return(lifecycle.Stats{Total: 4, Completed: 1}, nil)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/lifecycles/stats", nil))
	h.Stats(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- ListOverdue ---

func TestListOverdue_ForcesOverdueFilter(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	svc.EXPECT().List(mock.Anything, hrCaller(),
		lifecycle.Filter{OverdueOnly: true}, lifecycle.Page{},
	).Return(&ports.LifecycleList{}, nil)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/lifecycles/overdue", nil))
	h.ListOverdue(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	l := validLifecycle(t)
	taskID := l.Tasks[0].ID
	svc.EXPECT().UpdateTask(mock.Anything, hrCaller(), l.ID, taskID, lifecycle.TaskUpdate{
		Status:  lifecycle.TaskCompleted,
		ActorID: "hr-1",
		Notes:   "done",
	}).Return(l, nil)

	body := jsonBody(t, dto.UpdateTaskRequest{Status: "completed", Notes: "done"})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/tasks/y", body))
	req = withChiParams(req, map[string]string{"id": l.ID, "taskId": taskID})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTask_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	body := jsonBody(t, dto.UpdateTaskRequest{Status: "paused"})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/tasks/y", body))
	req = withChiParams(req, map[string]string{"id": "lc-1", "taskId": "t-1"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CompleteChecklistItem ---

func TestCompleteChecklistItem_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	l := validLifecycle(t)
	svc.EXPECT().CompleteChecklistItem(mock.Anything, hrCaller(), l.ID, 2, "signed").
		Return(l, nil)

	body := jsonBody(t, dto.CompleteChecklistRequest{Notes: "signed"})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/checklist/2", body))
	req = withChiParams(req, map[string]string{"id": l.ID, "index": "2"})
	h.CompleteChecklistItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestCompleteChecklistItem_BadIndex(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/checklist/first", nil))
	req = withChiParams(req, map[string]string{"id": "lc-1", "index": "first"})
	h.CompleteChecklistItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- OverrideStatus ---

func TestOverrideStatus_Success(t *testing.T) {
	t.Parallel()
	h, svc := newLifecycleHandler(t)

	l := validLifecycle(t)
	svc.EXPECT().OverrideStatus(mock.Anything, hrCaller(), l.ID, lifecycle.StatusOnHold, "visa delay").
		Return(l, nil)

	body := jsonBody(t, dto.OverrideStatusRequest{Status: "on_hold", Note: "visa delay"})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/status", body))
	req = withChiParams(req, map[string]string{"id": l.ID})
	h.OverrideStatus(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestOverrideStatus_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, _ := newLifecycleHandler(t)

	body := jsonBody(t, dto.OverrideStatusRequest{Status: "archived"})
	rec := httptest.NewRecorder()
	req := withCallerHeaders(httptest.NewRequest(http.MethodPatch, "/api/v1/lifecycles/x/status", body))
	req = withChiParams(req, map[string]string{"id": "lc-1"})
	h.OverrideStatus(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
