package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/peopleops/lifecycle-service/internal/adapters/clients/acl/directory"
	"github.com/peopleops/lifecycle-service/internal/platform/httpclient"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.UserDirectory = (*DirectoryClient)(nil)
	_ ports.HealthChecker = (*DirectoryClient)(nil)
)

// DirectoryClient is the outbound adapter for the user directory API. It
// implements [ports.UserDirectory]: employee lookup for the name/email
// snapshot on new lifecycles, and the account status update fired when an
// offboarding lifecycle completes.
//
// HTTP errors are mapped to domain errors (ErrNotFound, ErrValidation, etc.)
// by [TranslateHTTPError]. The underlying [httpclient.Client] provides
// circuit breaking, retry with exponential backoff, OpenTelemetry tracing,
// and health checking for every outbound call.
type DirectoryClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewDirectoryClient creates a DirectoryClient that sends requests through
// the given [httpclient.Client]. The client's BaseURL should point to the
// directory API root (e.g. "https://directory.internal").
func NewDirectoryClient(client *httpclient.Client, logger *slog.Logger) *DirectoryClient {
	return &DirectoryClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetEmployee fetches an employee from GET /api/v1/employees/{id}.
// Returns [domain.ErrNotFound] if the directory returns 404.
func (c *DirectoryClient) GetEmployee(ctx context.Context, employeeID string) (*ports.EmployeeRecord, error) {
	path := "/api/v1/employees/" + url.PathEscape(employeeID)

	var dto directory.EmployeeDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	rec := directory.ToEmployeeRecord(&dto)
	return &rec, nil
}

// MarkPendingOffboarding sends PUT /api/v1/employees/{id}/account-status
// setting the account status to PENDING_OFFBOARDING and deactivating the
// account. Returns [domain.ErrNotFound] if the employee does not exist.
func (c *DirectoryClient) MarkPendingOffboarding(ctx context.Context, employeeID string) error {
	path := fmt.Sprintf("/api/v1/employees/%s/account-status", url.PathEscape(employeeID))
	reqDTO := directory.ToPendingOffboardingRequest()

	return c.req.Do(ctx, http.MethodPut, path, http.StatusOK, reqDTO, nil)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value matches the service name used by the
// underlying [httpclient.Client] for tracing and metrics.
func (c *DirectoryClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the directory's availability based on the circuit
// breaker state of the underlying client, without making a network call.
//
// This reports downstream status, not service readiness. The service itself
// is always ready to handle requests (it returns proper domain errors when
// the downstream is failing). Tying readiness to downstream health would
// prevent the circuit breaker from ever recovering, because Kubernetes would
// stop routing traffic to this service.
func (c *DirectoryClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
