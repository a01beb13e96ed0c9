package services

import (
	"testing"

	"meetspace-admin/internal/models"
)

func TestOverlayRolesWins(t *testing.T) {
	users := []models.User{
		{Name: "A", Email: "a@x.dev", Role: models.RoleUser},
		{Name: "B", Email: "b@x.dev", Role: models.RoleOrganizer},
		{Name: "C", Email: "c@x.dev"},
	}
	roles := []models.Role{
		{Email: "a@x.dev", Role: models.RoleAdmin},
		{Email: "b@x.dev", Role: models.RoleUser},
		{Email: "nobody@x.dev", Role: models.RoleSuperAdmin},
	}

	out := OverlayRoles(users, roles)

	if out[0].Role != models.RoleAdmin {
		t.Errorf("a@x.dev role = %q, want admin overlay", out[0].Role)
	}
	// Overlay is unconditional even when it demotes.
	if out[1].Role != models.RoleUser {
		t.Errorf("b@x.dev role = %q, want user overlay", out[1].Role)
	}
	if out[2].Role != "" {
		t.Errorf("c@x.dev role = %q, want untouched", out[2].Role)
	}
}

func TestOverlayRolesDoesNotMutateInput(t *testing.T) {
	users := []models.User{{Email: "a@x.dev", Role: models.RoleUser}}
	roles := []models.Role{{Email: "a@x.dev", Role: models.RoleAdmin}}

	OverlayRoles(users, roles)

	if users[0].Role != models.RoleUser {
		t.Errorf("input slice mutated: %q", users[0].Role)
	}
}

func TestOverlayRolesSkipsBlankEntries(t *testing.T) {
	users := []models.User{{Email: "a@x.dev", Role: models.RoleUser}}
	roles := []models.Role{{Email: "a@x.dev", Role: ""}, {Email: "", Role: models.RoleAdmin}}

	out := OverlayRoles(users, roles)
	if out[0].Role != models.RoleUser {
		t.Errorf("blank role entry applied: %q", out[0].Role)
	}
}

func TestOverlayRolesEmptyInputs(t *testing.T) {
	users := []models.User{{Email: "a@x.dev", Role: models.RoleUser}}
	if out := OverlayRoles(users, nil); out[0].Role != models.RoleUser {
		t.Error("nil roles changed users")
	}
	if out := OverlayRoles(nil, []models.Role{{Email: "x", Role: "admin"}}); out != nil {
		t.Error("nil users produced output")
	}
}
