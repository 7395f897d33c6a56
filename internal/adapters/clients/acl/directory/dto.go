// Package directory implements the Anti-Corruption Layer translators for the
// downstream user directory's employee resources.
package directory

// EmployeeDTO matches the downstream Employee schema.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	RoleLevel  int    `json:"role_level"`
	Active     bool   `json:"active"`
}

// AccountStatusRequestDTO matches the downstream UpdateAccountStatusRequest
// schema.
type AccountStatusRequestDTO struct {
	AccountStatus string `json:"account_status"`
	Active        bool   `json:"active"`
}
