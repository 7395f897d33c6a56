package lifecycle

// Filter holds optional criteria for listing lifecycles. Zero-value fields
// mean "no filter" for that dimension. Search matches the employee name or
// email snapshot, case-insensitively.
type Filter struct {
	Status      Status
	Type        Type
	Department  string
	Search      string
	OverdueOnly bool
}

// Sort columns accepted by the listing surface.
const (
	SortByStartDate  = "start_date"
	SortByTargetDate = "target_completion_date"
	SortByCreatedAt  = "created_at"
	SortByStatus     = "status"
)

// Page holds pagination and ordering for listing lifecycles.
type Page struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Normalize applies listing defaults and clamps the page size.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	switch p.SortBy {
	case SortByStartDate, SortByTargetDate, SortByCreatedAt, SortByStatus:
	default:
		p.SortBy = SortByCreatedAt
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
	return p
}

// Offset returns the row offset implied by page and limit.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
