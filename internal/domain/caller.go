package domain

// Role levels used for visibility scoping. The authorization decision itself
// ("may this caller act at all") is made upstream of this service; the levels
// here only scope what a caller can see and which departments they cover.
const (
	RoleLevelStaff   = 1
	RoleLevelManager = 2
	RoleLevelHR      = 3
	RoleLevelAdmin   = 4
)

// Caller identifies the authenticated principal behind a request. It is
// populated by the HTTP adapter from identity headers set by the upstream
// gateway.
type Caller struct {
	ID         string
	RoleLevel  int
	Department string
}

// SeesAllDepartments reports whether the caller may see lifecycles outside
// their own department. Callers below the HR level are scoped to their own.
func (c Caller) SeesAllDepartments() bool {
	return c.RoleLevel >= RoleLevelHR
}
