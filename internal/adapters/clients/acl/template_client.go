package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/peopleops/lifecycle-service/internal/adapters/clients/acl/template"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/platform/httpclient"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TemplateCatalog = (*TemplateClient)(nil)
	_ ports.HealthChecker   = (*TemplateClient)(nil)
)

// TemplateClient is the outbound adapter for the template catalog API. It
// implements [ports.TemplateCatalog]: department/role-scoped checklist and
// document extras appended to new lifecycles. The catalog is optional and
// consulted best-effort; callers treat any error as "no extras".
type TemplateClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewTemplateClient creates a TemplateClient that sends requests through the
// given [httpclient.Client].
func NewTemplateClient(client *httpclient.Client, logger *slog.Logger) *TemplateClient {
	return &TemplateClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ProcessTemplates fetches the merged template for a department, role, and
// process type from GET /api/v1/templates. Returns [domain.ErrNotFound] if
// no template is defined for the combination.
func (c *TemplateClient) ProcessTemplates(ctx context.Context, department, roleID string, t lifecycle.Type) (*ports.ProcessTemplates, error) {
	q := url.Values{}
	q.Set("department", department)
	q.Set("type", string(t))
	if roleID != "" {
		q.Set("role_id", roleID)
	}
	path := "/api/v1/templates?" + q.Encode()

	var dto template.ProcessTemplateDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return template.ToProcessTemplates(&dto), nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TemplateClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the catalog's availability based on the circuit
// breaker state of the underlying client, without making a network call.
func (c *TemplateClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
