package template

import (
	"github.com/peopleops/lifecycle-service/internal/domain/lifecycle"
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// ToProcessTemplates converts a downstream ProcessTemplateDTO to the extras
// appended to a new lifecycle. Checklist items start uncompleted and
// documents unreceived regardless of what the catalog sends.
func ToProcessTemplates(dto *ProcessTemplateDTO) *ports.ProcessTemplates {
	out := &ports.ProcessTemplates{}

	for _, item := range dto.Checklist {
		out.Checklist = append(out.Checklist, lifecycle.ChecklistItem{
			Item:     item.Item,
			Required: item.Required,
		})
	}
	for _, doc := range dto.Documents {
		out.Documents = append(out.Documents, lifecycle.DocumentRequirement{
			Name:     doc.Name,
			Required: doc.Required,
		})
	}
	return out
}
