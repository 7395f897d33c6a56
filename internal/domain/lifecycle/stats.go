package lifecycle

import "math"

// Stats aggregates counts over persisted lifecycles for the reporting
// surface.
type Stats struct {
	Total       int
	Active      int
	Completed   int
	Overdue     int
	Onboarding  int
	Offboarding int
}

// CompletionRate returns round(100 * completed/total), 0 when no lifecycles
// exist.
func (s Stats) CompletionRate() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
}
