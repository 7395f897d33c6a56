package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

var testTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func hrCaller() domain.Caller {
	return domain.Caller{ID: "hr-1", RoleLevel: domain.RoleLevelHR, Department: "People"}
}

// withCallerHeaders sets the gateway identity headers matching hrCaller.
func withCallerHeaders(r *http.Request) *http.Request {
	r.Header.Set("X-Caller-ID", "hr-1")
	r.Header.Set("X-Role-Level", "3")
	r.Header.Set("X-Department", "People")
	return r
}

func validLifecycle(t *testing.T) *lifecycle.Lifecycle {
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

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
