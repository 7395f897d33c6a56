package template

import "testing"

func TestToProcessTemplates(t *testing.T) {
	t.Parallel()

	dto := &ProcessTemplateDTO{
		Checklist: []ChecklistItemDTO{
			{Item: "Issue badge", Required: true},
			{Item: "Book desk", Required: false},
		},
		Documents: []DocumentDTO{
			{Name: "Signed NDA", Required: true},
		},
	}

	got := ToProcessTemplates(dto)

	if len(got.Checklist) != 2 {
		t.Fatalf("len(Checklist) = %d, want 2", len(got.Checklist))
	}
	if got.Checklist[0].Item != "Issue badge" || !got.Checklist[0].Required {
		t.Errorf("Checklist[0] = %+v, want required 'Issue badge'", got.Checklist[0])
	}
	if got.Checklist[0].Completed {
		t.Error("Checklist[0].Completed = true, want false")
	}
	if len(got.Documents) != 1 {
		t.Fatalf("len(Documents) = %d, want 1", len(got.Documents))
	}
	if got.Documents[0].Name != "Signed NDA" || got.Documents[0].Received {
		t.Errorf("Documents[0] = %+v, want unreceived 'Signed NDA'", got.Documents[0])
	}
}

func TestToProcessTemplates_Empty(t *testing.T) {
	t.Parallel()

	got := ToProcessTemplates(&ProcessTemplateDTO{})

	if len(got.Checklist) != 0 || len(got.Documents) != 0 {
		t.Errorf("ToProcessTemplates(empty) = %+v, want no extras", got)
	}
}
