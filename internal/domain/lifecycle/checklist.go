package lifecycle

import (
	"fmt"
	"time"

	"github.com/peopleops/lifecycle-service/internal/domain"
)

// ChecklistItem is an auxiliary, independently tracked requirement. Checklist
// completion never influences the lifecycle status; only tasks drive it.
type ChecklistItem struct {
	Item        string     `json:"item"`
	Required    bool       `json:"required"`
	Completed   bool       `json:"completed"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// DocumentRequirement tracks a document the process expects to receive.
type DocumentRequirement struct {
	Name       string     `json:"name"`
	Required   bool       `json:"required"`
	Received   bool       `json:"received"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// CompleteChecklistItem marks the checklist item at the given index complete
// and appends an audit entry. Returns domain.ErrNotFound for an out-of-range
// index, leaving the checklist unchanged.
func (l *Lifecycle) CompleteChecklistItem(index int, completedBy, notes string, now time.Time) error {
	if index < 0 || index >= len(l.Checklist) {
		return fmt.Errorf("checklist item %d: %w", index, domain.ErrNotFound)
	}

	item := &l.Checklist[index]
	completed := now
	item.Completed = true
	item.CompletedBy = completedBy
	item.CompletedAt = &completed
	item.Notes = notes

	l.AppendTimeline(ActionChecklistCompleted,
		fmt.Sprintf("checklist item %q completed", item.Item),
		completedBy, TimelineSuccess, now)

	l.UpdatedAt = now
	return nil
}
