package lifecycle

// TaskType is the closed enumeration of task categories. Five types belong
// to onboarding plans and five to offboarding plans; a task type is only
// valid within a lifecycle of the matching type.
type TaskType string

const (
	// Onboarding task types.
	TaskTypeDocumentation TaskType = "documentation"
	TaskTypeSystemAccess  TaskType = "system_access"
	TaskTypeOrientation   TaskType = "orientation"
	TaskTypeTraining      TaskType = "training"
	TaskTypeFinalReview   TaskType = "final_review"

	// Offboarding task types.
	TaskTypeExitDocumentation TaskType = "exit_documentation"
	TaskTypeAccessReturn      TaskType = "access_return"
	TaskTypeExitInterview     TaskType = "exit_interview"
	TaskTypeKnowledgeTransfer TaskType = "knowledge_transfer"
	TaskTypeFinalClearance    TaskType = "final_clearance"
)

// IsValid returns true if the task type is one of the defined constants.
func (t TaskType) IsValid() bool {
	return t.lifecycleType() != ""
}

// ValidFor reports whether the task type belongs to the given lifecycle type.
func (t TaskType) ValidFor(lt Type) bool {
	return t.lifecycleType() == lt
}

// String implements fmt.Stringer.
func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) lifecycleType() Type {
	switch t {
	case TaskTypeDocumentation, TaskTypeSystemAccess, TaskTypeOrientation,
		TaskTypeTraining, TaskTypeFinalReview:
		return TypeOnboarding
	case TaskTypeExitDocumentation, TaskTypeAccessReturn, TaskTypeExitInterview,
		TaskTypeKnowledgeTransfer, TaskTypeFinalClearance:
		return TypeOffboarding
	default:
		return ""
	}
}
