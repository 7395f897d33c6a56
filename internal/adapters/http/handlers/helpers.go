package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peopleops/lifecycle-service/internal/adapters/http/dto"
	"github.com/peopleops/lifecycle-service/internal/domain"
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

// Identity headers set by the upstream gateway. Authorization happens there;
// these only identify the caller for visibility scoping and audit entries.
const (
	headerCallerID   = "X-Caller-ID"
	headerRoleLevel  = "X-Role-Level"
	headerDepartment = "X-Department"
)

// callerFromRequest builds the caller identity from the gateway headers.
// A missing caller ID is a validation error; an unparsable role level falls
// back to the most restrictive (staff) scope.
func callerFromRequest(r *http.Request) (domain.Caller, error) {
	id := r.Header.Get(headerCallerID)
	if id == "" {
		return domain.Caller{}, &domain.ValidationError{
			Fields: map[string]string{headerCallerID: "header " + domain.MsgRequired},
		}
	}

	level := domain.RoleLevelStaff
	if raw := r.Header.Get(headerRoleLevel); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			level = parsed
		}
	}

	return domain.Caller{
		ID:         id,
		RoleLevel:  level,
		Department: r.Header.Get(headerDepartment),
	}, nil
}

// parseIndex extracts a non-negative integer path parameter.
func parseIndex(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a non-negative integer"},
		}
	}
	return idx, nil
}

// parseListQuery builds the listing filter and page from query parameters.
// Enum-valued filters reject undefined values; pagination bounds are left to
// Page.Normalize in the service.
func parseListQuery(r *http.Request) (lifecycle.Filter, lifecycle.Page, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	var filter lifecycle.Filter
	if raw := q.Get("status"); raw != "" {
		if !lifecycle.Status(raw).IsValid() {
			fields["status"] = "invalid: " + strconv.Quote(raw)
		}
		filter.Status = lifecycle.Status(raw)
	}
	if raw := q.Get("type"); raw != "" {
		if !lifecycle.Type(raw).IsValid() {
			fields["type"] = "invalid: " + strconv.Quote(raw)
		}
		filter.Type = lifecycle.Type(raw)
	}
	filter.Department = q.Get("department")
	filter.Search = q.Get("search")

	var page lifecycle.Page
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = "must be an integer"
		}
		page.Page = n
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["limit"] = "must be an integer"
		}
		page.Limit = n
	}
	page.SortBy = q.Get("sort_by")
	page.SortOrder = q.Get("sort_order")

	if len(fields) > 0 {
		return lifecycle.Filter{}, lifecycle.Page{}, &domain.ValidationError{Fields: fields}
	}
	return filter, page, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
