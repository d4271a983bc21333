package services

import (
	"errors"
	"testing"

	"github.com/ka4a/talentai-sub000/internal/models"
)

func TestResolveReturnsSingleRoleProfile(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")
	user := f.createUser("admin")
	f.assignRole(user, models.RoleClientAdministrator, client.ID)

	profile, err := f.resolver.Resolve(user.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if profile.Kind != models.RoleClientAdministrator {
		t.Fatalf("expected client_administrator, got %s", profile.Kind)
	}
	if profile.Client == nil || profile.Client.ID != client.ID {
		t.Fatal("expected profile bound to the client organization")
	}
	if profile.Org() != client.Ref() {
		t.Fatalf("expected org ref %+v, got %+v", client.Ref(), profile.Org())
	}
}

func TestResolveFailsWithoutAnyRole(t *testing.T) {
	f := newFixture(t)
	user := f.createUser("roleless")

	_, err := f.resolver.Resolve(user.ID)
	var profileErr *ProfileResolutionError
	if !errors.As(err, &profileErr) {
		t.Fatalf("expected ProfileResolutionError, got %v", err)
	}
	if profileErr.Rows != 0 {
		t.Fatalf("expected 0 rows reported, got %d", profileErr.Rows)
	}
}

func TestResolveFailsOnMultipleRoleRows(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")
	user := f.createUser("double")

	// Bypass AssignRole's guard to simulate corrupted data.
	if err := f.database.Create(&models.ClientAdministrator{UserID: user.ID, ClientID: client.ID}).Error; err != nil {
		t.Fatalf("insert client role: %v", err)
	}
	if err := f.database.Create(&models.Recruiter{UserID: user.ID, AgencyID: agency.ID}).Error; err != nil {
		t.Fatalf("insert agency role: %v", err)
	}

	_, err := f.resolver.Resolve(user.ID)
	var profileErr *ProfileResolutionError
	if !errors.As(err, &profileErr) {
		t.Fatalf("expected ProfileResolutionError, got %v", err)
	}
	if profileErr.Rows != 2 {
		t.Fatalf("expected 2 rows reported, got %d", profileErr.Rows)
	}
}

func TestAssignRoleRejectsSecondRole(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")
	user := f.createUser("single")
	f.assignRole(user, models.RoleClientStandardUser, client.ID)

	err := f.orgs.AssignRole(user.ID, models.RoleRecruiter, agency.ID)
	if !IsIntegrityConflict(err) {
		t.Fatalf("expected integrity conflict, got %v", err)
	}
}

func TestDeleteClientCascadesRolesAndOrphanedUsers(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")
	user := f.createUser("doomed")
	f.assignRole(user, models.RoleClientAdministrator, client.ID)

	if err := f.orgs.DeleteClient(client.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}

	if total := countRows(t, f.database.Model(&models.ClientAdministrator{}).Where("user_id = ?", user.ID)); total != 0 {
		t.Fatalf("expected role row removed, found %d", total)
	}
	if total := countRows(t, f.database.Model(&models.User{}).Where("id = ?", user.ID)); total != 0 {
		t.Fatalf("expected orphaned user removed, found %d", total)
	}
}
