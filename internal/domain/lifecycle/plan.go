package lifecycle

// plannedTask is one row of the fixed task schedule for a lifecycle type.
type plannedTask struct {
	title    string
	taskType TaskType
	priority Priority
	dueDays  int
}

// standardPlans holds the fixed five-task schedule per lifecycle type. Due
// offsets are days from the lifecycle start date.
var standardPlans = map[Type][]plannedTask{
	TypeOnboarding: {
		{"Complete new hire documentation", TaskTypeDocumentation, PriorityHigh, 2},
		{"Provision system access", TaskTypeSystemAccess, PriorityHigh, 5},
		{"Attend orientation", TaskTypeOrientation, PriorityMedium, 7},
		{"Complete role training", TaskTypeTraining, PriorityHigh, 14},
		{"Final onboarding review", TaskTypeFinalReview, PriorityCritical, 21},
	},
	TypeOffboarding: {
		{"Complete exit documentation", TaskTypeExitDocumentation, PriorityHigh, 2},
		{"Revoke access and return equipment", TaskTypeAccessReturn, PriorityCritical, 5},
		{"Conduct exit interview", TaskTypeExitInterview, PriorityMedium, 7},
		{"Complete knowledge transfer", TaskTypeKnowledgeTransfer, PriorityHigh, 14},
		{"Final clearance sign-off", TaskTypeFinalClearance, PriorityCritical, 21},
	},
}

// HasStandardPlan reports whether a fixed task schedule exists for the type.
func HasStandardPlan(t Type) bool {
	_, ok := standardPlans[t]
	return ok
}
