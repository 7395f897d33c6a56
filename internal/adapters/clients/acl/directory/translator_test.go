package directory

import "testing"

func TestToEmployeeRecord(t *testing.T) {
	t.Parallel()

	dto := &EmployeeDTO{
		ID:         "emp-42",
		Name:       "Ada Okafor",
		Email:      "ada.okafor@example.com",
		Department: "Engineering",
		RoleLevel:  2,
		Active:     true,
	}

	rec := ToEmployeeRecord(dto)

	if rec.ID != "emp-42" {
		t.Errorf("ID = %q, want %q", rec.ID, "emp-42")
	}
	if rec.Name != "Ada Okafor" {
		t.Errorf("Name = %q, want %q", rec.Name, "Ada Okafor")
	}
	if rec.Email != "ada.okafor@example.com" {
		t.Errorf("Email = %q, want %q", rec.Email, "ada.okafor@example.com")
	}
	if rec.Department != "Engineering" {
		t.Errorf("Department = %q, want %q", rec.Department, "Engineering")
	}
	if rec.RoleLevel != 2 {
		t.Errorf("RoleLevel = %d, want 2", rec.RoleLevel)
	}
	if !rec.Active {
		t.Error("Active = false, want true")
	}
}

func TestToPendingOffboardingRequest(t *testing.T) {
	t.Parallel()

	req := ToPendingOffboardingRequest()

	if req.AccountStatus != AccountStatusPendingOffboarding {
		t.Errorf("AccountStatus = %q, want %q", req.AccountStatus, AccountStatusPendingOffboarding)
	}
	if req.Active {
		t.Error("Active = true, want false")
	}
}
