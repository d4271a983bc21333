package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	registerAndLogin(t, app, "admin@example.com")

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assertStatus(t, response, http.StatusUnauthorized)
}

func TestMeRequiresResolvedProfile(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := registerAndLogin(t, app, "admin@example.com")

	// A user without any role row cannot act.
	response := jsonRequest(t, app, http.MethodGet, "/api/auth/me", token, nil)
	assertStatus(t, response, http.StatusUnauthorized)

	clientID := createOrganization(t, app, "clients", "Acme")
	assignRole(t, app, userID, "client_administrator", clientID)

	response = jsonRequest(t, app, http.MethodGet, "/api/auth/me", token, nil)
	assertStatus(t, response, http.StatusOK)

	var body struct {
		Role    string `json:"role"`
		OrgKind string `json:"org_kind"`
		OrgID   uint   `json:"org_id"`
	}
	decodeBody(t, response, &body)
	if body.Role != "client_administrator" || body.OrgKind != "client" || body.OrgID != clientID {
		t.Fatalf("unexpected profile payload: %+v", body)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t)
	response := jsonRequest(t, app, http.MethodGet, "/api/jobs", "", nil)
	assertStatus(t, response, http.StatusUnauthorized)
}

func TestSecondRoleAssignmentConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	userID, _ := registerAndLogin(t, app, "admin@example.com")

	clientID := createOrganization(t, app, "clients", "Acme")
	agencyID := createOrganization(t, app, "agencies", "Scouts")
	assignRole(t, app, userID, "client_administrator", clientID)

	response := jsonRequest(t, app, http.MethodPost, "/api/organizations/roles", "", fiber.Map{
		"user_id":         userID,
		"role":            "recruiter",
		"organization_id": agencyID,
	})
	assertStatus(t, response, http.StatusConflict)
}
