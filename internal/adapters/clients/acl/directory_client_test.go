package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/platform/config"
	"github.com/peopleops/lifecycle-service/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL, serviceName string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.Default()

	return httpclient.New(cfg, serviceName, nil, logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestDirectoryClient_GetEmployee(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/employees/emp-42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"id": "emp-42", "name": "Ada Okafor",
			"email": "ada.okafor@example.com", "department": "Engineering",
			"role_level": 2, "active": true,
		})
	}))
	defer ts.Close()

	client := NewDirectoryClient(newTestClient(t, ts.URL, "user-directory"), slog.Default())
	rec, err := client.GetEmployee(context.Background(), "emp-42")
	if err != nil {
		t.Fatalf("GetEmployee() error = %v", err)
	}
	if rec.Name != "Ada Okafor" {
		t.Errorf("Name = %q, want %q", rec.Name, "Ada Okafor")
	}
	if rec.Department != "Engineering" {
		t.Errorf("Department = %q, want %q", rec.Department, "Engineering")
	}
}

func TestDirectoryClient_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"employee ghost not found"}`))
	}))
	defer ts.Close()

	client := NewDirectoryClient(newTestClient(t, ts.URL, "user-directory"), slog.Default())
	_, err := client.GetEmployee(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetEmployee() error = %v, want ErrNotFound", err)
	}
}

func TestDirectoryClient_MarkPendingOffboarding(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/employees/emp-42/account-status" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("unmarshaling request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewDirectoryClient(newTestClient(t, ts.URL, "user-directory"), slog.Default())
	if err := client.MarkPendingOffboarding(context.Background(), "emp-42"); err != nil {
		t.Fatalf("MarkPendingOffboarding() error = %v", err)
	}
	if gotBody["account_status"] != "PENDING_OFFBOARDING" {
		t.Errorf("account_status = %v, want PENDING_OFFBOARDING", gotBody["account_status"])
	}
	if gotBody["active"] != false {
		t.Errorf("active = %v, want false", gotBody["active"])
	}
}

func TestDirectoryClient_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewDirectoryClient(newTestClient(t, ts.URL, "user-directory"), slog.Default())
	_, err := client.GetEmployee(context.Background(), "emp-42")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetEmployee() error = %v, want ErrUnavailable", err)
	}
}

func TestDirectoryClient_Name(t *testing.T) {
	t.Parallel()

	client := NewDirectoryClient(newTestClient(t, "http://localhost", "user-directory"), slog.Default())
	if got := client.Name(); got != "user-directory" {
		t.Errorf("Name() = %q, want %q", got, "user-directory")
	}
}

func TestDirectoryClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := NewDirectoryClient(newTestClient(t, "http://localhost", "user-directory"), slog.Default())
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for closed breaker", err)
	}
}
