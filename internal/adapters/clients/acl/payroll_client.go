package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/peopleops/lifecycle-service/internal/platform/httpclient"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PayrollClient = (*PayrollClient)(nil)
	_ ports.HealthChecker = (*PayrollClient)(nil)
)

// finalPayrollRequestDTO matches the downstream FinalPayrollRequest schema.
type finalPayrollRequestDTO struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

// PayrollClient is the outbound adapter for the payroll API. It implements
// [ports.PayrollClient]: the final payroll calculation requested when an
// offboarding lifecycle completes. The returned breakdown is opaque to this
// service and stored verbatim, so no translator subpackage exists for it.
type PayrollClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewPayrollClient creates a PayrollClient that sends requests through the
// given [httpclient.Client].
func NewPayrollClient(client *httpclient.Client, logger *slog.Logger) *PayrollClient {
	return &PayrollClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// CalculateFinalPayroll sends POST /api/v1/payroll/final-calculations for
// the employee's last month and returns the breakdown exactly as the payroll
// system produced it. Returns [domain.ErrValidation] if payroll rejects the
// request.
func (c *PayrollClient) CalculateFinalPayroll(ctx context.Context, employeeID string, month time.Month, year int) (json.RawMessage, error) {
	reqDTO := finalPayrollRequestDTO{
		EmployeeID: employeeID,
		Year:       year,
		Month:      int(month),
	}

	var breakdown json.RawMessage
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/payroll/final-calculations", http.StatusOK, reqDTO, &breakdown); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *PayrollClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the payroll system's availability based on the circuit
// breaker state of the underlying client, without making a network call.
func (c *PayrollClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
