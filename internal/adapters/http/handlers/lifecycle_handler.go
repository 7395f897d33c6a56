package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopleops/lifecycle-service/internal/adapters/http/dto"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// LifecycleHandler handles HTTP requests for employee lifecycle operations.
type LifecycleHandler struct {
	service ports.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler with the given service port.
func NewLifecycleHandler(service ports.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

// Create handles POST /api/v1/lifecycles.
func (h *LifecycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateLifecycleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), caller, req.ToNewParams())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated,
		dto.OKMessage(dto.ToLifecycleResponse(created), "lifecycle created"))
}

// List handles GET /api/v1/lifecycles.
func (h *LifecycleHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, page, err := parseListQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.service.List(r.Context(), caller, filter, page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.ToLifecycleListResponse(list)))
}

// Get handles GET /api/v1/lifecycles/{id}.
func (h *LifecycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.service.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.ToLifecycleResponse(l)))
}

// Stats handles GET /api/v1/lifecycles/stats.
func (h *LifecycleHandler) Stats(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stats, err := h.service.Stats(r.Context(), caller)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.ToStatsResponse(stats)))
}

// ListOverdue handles GET /api/v1/lifecycles/overdue. It is the listing
// surface restricted to lifecycles with at least one overdue task.
func (h *LifecycleHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, page, err := parseListQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	filter.OverdueOnly = true

	list, err := h.service.List(r.Context(), caller, filter, page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.ToLifecycleListResponse(list)))
}

// UpdateTask handles PATCH /api/v1/lifecycles/{id}/tasks/{taskId}.
func (h *LifecycleHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	upd := lifecycle.TaskUpdate{
		Status:  lifecycle.TaskStatus(req.Status),
		ActorID: caller.ID,
		Notes:   req.Notes,
	}

	l, err := h.service.UpdateTask(r.Context(), caller,
		chi.URLParam(r, "id"), chi.URLParam(r, "taskId"), upd)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK,
		dto.OKMessage(dto.ToLifecycleResponse(l), "task updated"))
}

// CompleteChecklistItem handles PATCH /api/v1/lifecycles/{id}/checklist/{index}.
func (h *LifecycleHandler) CompleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	index, err := parseIndex(r, "index")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CompleteChecklistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.service.CompleteChecklistItem(r.Context(), caller,
		chi.URLParam(r, "id"), index, req.Notes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK,
		dto.OKMessage(dto.ToLifecycleResponse(l), "checklist item completed"))
}

// OverrideStatus handles PATCH /api/v1/lifecycles/{id}/status.
func (h *LifecycleHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.OverrideStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.service.OverrideStatus(r.Context(), caller,
		chi.URLParam(r, "id"), lifecycle.Status(req.Status), req.Note)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK,
		dto.OKMessage(dto.ToLifecycleResponse(l), "status updated"))
}
