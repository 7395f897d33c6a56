// Package template implements the Anti-Corruption Layer translators for the
// downstream template catalog's process template resources.
package template

// ProcessTemplateDTO matches the downstream ProcessTemplate schema. The
// catalog returns the merged department- and role-level template for a
// process type.
type ProcessTemplateDTO struct {
	Checklist []ChecklistItemDTO `json:"checklist"`
	Documents []DocumentDTO      `json:"documents"`
}

// ChecklistItemDTO matches the downstream ChecklistTemplateItem schema.
type ChecklistItemDTO struct {
	Item     string `json:"item"`
	Required bool   `json:"required"`
}

// DocumentDTO matches the downstream DocumentTemplateItem schema.
type DocumentDTO struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}
