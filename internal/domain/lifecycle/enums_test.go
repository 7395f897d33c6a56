package lifecycle

import "testing"

func TestType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{name: "onboarding", typ: TypeOnboarding, want: true},
		{name: "offboarding", typ: TypeOffboarding, want: true},
		{name: "transfer", typ: TypeTransfer, want: true},
		{name: "promotion", typ: TypePromotion, want: true},
		{name: "empty", typ: "", want: false},
		{name: "case sensitive", typ: "Onboarding", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("Type(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	t.Parallel()

	active := map[Status]bool{
		StatusInitiated:  true,
		StatusInProgress: true,
		StatusCompleted:  false,
		StatusCancelled:  false,
		StatusOnHold:     false,
	}

	for status, want := range active {
		if got := status.IsActive(); got != want {
			t.Errorf("Status(%q).IsActive() = %v, want %v", status, got, want)
		}
	}
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	terminal := map[TaskStatus]bool{
		TaskPending:    false,
		TaskInProgress: false,
		TaskOverdue:    false,
		TaskCompleted:  true,
		TaskCancelled:  true,
	}

	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("TaskStatus(%q).IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestTaskType_ValidFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		taskType TaskType
		lifeType Type
		want     bool
	}{
		{name: "documentation is onboarding", taskType: TaskTypeDocumentation, lifeType: TypeOnboarding, want: true},
		{name: "documentation not offboarding", taskType: TaskTypeDocumentation, lifeType: TypeOffboarding, want: false},
		{name: "final clearance is offboarding", taskType: TaskTypeFinalClearance, lifeType: TypeOffboarding, want: true},
		{name: "knowledge transfer not onboarding", taskType: TaskTypeKnowledgeTransfer, lifeType: TypeOnboarding, want: false},
		{name: "unknown type", taskType: "paperwork", lifeType: TypeOnboarding, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.taskType.ValidFor(tt.lifeType); got != tt.want {
				t.Errorf("TaskType(%q).ValidFor(%q) = %v, want %v", tt.taskType, tt.lifeType, got, tt.want)
			}
		})
	}

	// All ten task types are valid; each belongs to exactly one plan.
	all := []TaskType{
		TaskTypeDocumentation, TaskTypeSystemAccess, TaskTypeOrientation,
		TaskTypeTraining, TaskTypeFinalReview,
		TaskTypeExitDocumentation, TaskTypeAccessReturn, TaskTypeExitInterview,
		TaskTypeKnowledgeTransfer, TaskTypeFinalClearance,
	}
	for _, taskType := range all {
		if !taskType.IsValid() {
			t.Errorf("TaskType(%q).IsValid() = false", taskType)
		}
		onb := taskType.ValidFor(TypeOnboarding)
		offb := taskType.ValidFor(TypeOffboarding)
		if onb == offb {
			t.Errorf("TaskType(%q) belongs to both or neither plan", taskType)
		}
	}
}

func TestStats_CompletionRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats Stats
		want  int
	}{
		{name: "empty", stats: Stats{}, want: 0},
		{name: "one third rounds", stats: Stats{Total: 3, Completed: 1}, want: 33},
		{name: "two thirds rounds up", stats: Stats{Total: 3, Completed: 2}, want: 67},
		{name: "all completed", stats: Stats{Total: 4, Completed: 4}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.stats.CompletionRate(); got != tt.want {
				t.Errorf("CompletionRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPage_Normalize(t *testing.T) {
	t.Parallel()

	p := Page{}.Normalize()
	if p.Page != 1 || p.Limit != 20 || p.SortBy != SortByCreatedAt || p.SortOrder != "desc" {
		t.Errorf("zero Page normalized to %+v", p)
	}

	p = Page{Page: 3, Limit: 500, SortBy: SortByStartDate, SortOrder: "asc"}.Normalize()
	if p.Limit != 100 {
		t.Errorf("Limit = %d, want clamped to 100", p.Limit)
	}
	if p.Offset() != 200 {
		t.Errorf("Offset() = %d, want 200", p.Offset())
	}
	if p.SortOrder != "asc" || p.SortBy != SortByStartDate {
		t.Errorf("valid sort settings changed: %+v", p)
	}
}
