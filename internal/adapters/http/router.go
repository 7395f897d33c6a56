// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopleops/lifecycle-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	lifecycleHandler *handlers.LifecycleHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes. The fixed /stats and /overdue segments are registered
	// before the {id} wildcard so chi matches them first.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/lifecycles", lifecycleHandler.Create)
		r.Get("/lifecycles", lifecycleHandler.List)
		r.Get("/lifecycles/stats", lifecycleHandler.Stats)
		r.Get("/lifecycles/overdue", lifecycleHandler.ListOverdue)
		r.Get("/lifecycles/{id}", lifecycleHandler.Get)
		r.Patch("/lifecycles/{id}/status", lifecycleHandler.OverrideStatus)
		r.Patch("/lifecycles/{id}/tasks/{taskId}", lifecycleHandler.UpdateTask)
		r.Patch("/lifecycles/{id}/checklist/{index}", lifecycleHandler.CompleteChecklistItem)
	})

	return r
}
