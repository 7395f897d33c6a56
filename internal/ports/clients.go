package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
)

// EmployeeRecord is the directory's view of an employee, used for the
// name/email snapshot on new lifecycles and for visibility scoping upstream.
type EmployeeRecord struct {
	ID         string
	Name       string
	Email      string
	Department string
	RoleLevel  int
	Active     bool
}

// UserDirectory is the client port for the external user directory.
// Implemented by the ACL adapter; called by the application layer.
type UserDirectory interface {
	// GetEmployee returns directory data for an employee.
	// Returns domain.ErrNotFound if the employee does not exist.
	GetEmployee(ctx context.Context, employeeID string) (*EmployeeRecord, error)

	// MarkPendingOffboarding sets the employee's account status to
	// PENDING_OFFBOARDING and deactivates the account. Invoked only by the
	// completion handler when an offboarding lifecycle completes.
	MarkPendingOffboarding(ctx context.Context, employeeID string) error
}

// PayrollClient is the client port for the external payroll system.
type PayrollClient interface {
	// CalculateFinalPayroll requests the final payroll computation for an
	// employee for the given month. The returned breakdown is opaque to this
	// service and stored verbatim on the lifecycle for HR review.
	CalculateFinalPayroll(ctx context.Context, employeeID string, month time.Month, year int) (json.RawMessage, error)
}

// ProcessTemplates holds optional department/role-scoped extras appended to
// a new lifecycle. The standard five-task plan never depends on any template
// existing.
type ProcessTemplates struct {
	Checklist []lifecycle.ChecklistItem
	Documents []lifecycle.DocumentRequirement
}

// TemplateCatalog is the optional client port for the template catalog.
// A catalog failure is logged and never blocks lifecycle creation.
type TemplateCatalog interface {
	ProcessTemplates(ctx context.Context, department, roleID string, t lifecycle.Type) (*ProcessTemplates, error)
}
