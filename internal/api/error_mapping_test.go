package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Visibility misses must be indistinguishable from missing rows: another
// organization's job answers 404, never 403.
func TestForeignJobAnswersNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	ownerID, ownerToken := registerAndLogin(t, app, "owner@example.com")
	ownerClientID := createOrganization(t, app, "clients", "Acme")
	assignRole(t, app, ownerID, "client_administrator", ownerClientID)

	response := jsonRequest(t, app, http.MethodPost, "/api/jobs", ownerToken, fiber.Map{
		"title": "Backend Engineer",
	})
	assertStatus(t, response, http.StatusCreated)
	var job struct {
		ID uint `json:"ID"`
	}
	decodeBody(t, response, &job)

	otherID, otherToken := registerAndLogin(t, app, "other@example.com")
	otherClientID := createOrganization(t, app, "clients", "Globex")
	assignRole(t, app, otherID, "client_administrator", otherClientID)

	jobPath := fmt.Sprintf("/api/jobs/%d", job.ID)
	response = jsonRequest(t, app, http.MethodGet, jobPath, otherToken, nil)
	assertStatus(t, response, http.StatusNotFound)

	response = jsonRequest(t, app, http.MethodGet, jobPath, ownerToken, nil)
	assertStatus(t, response, http.StatusOK)
}

func TestDuplicateContractAnswersConflict(t *testing.T) {
	app, _ := newTestApp(t)

	adminID, token := registerAndLogin(t, app, "admin@example.com")
	clientID := createOrganization(t, app, "clients", "Acme")
	agencyID := createOrganization(t, app, "agencies", "Scouts")
	assignRole(t, app, adminID, "client_administrator", clientID)

	payload := fiber.Map{"agency_id": agencyID, "client_id": clientID}
	response := jsonRequest(t, app, http.MethodPost, "/api/contracts", token, payload)
	assertStatus(t, response, http.StatusCreated)

	response = jsonRequest(t, app, http.MethodPost, "/api/contracts", token, payload)
	assertStatus(t, response, http.StatusConflict)
}

func TestAgencySideJobCreationForbidden(t *testing.T) {
	app, _ := newTestApp(t)

	adminID, token := registerAndLogin(t, app, "agency@example.com")
	agencyID := createOrganization(t, app, "agencies", "Scouts")
	assignRole(t, app, adminID, "agency_administrator", agencyID)

	response := jsonRequest(t, app, http.MethodPost, "/api/jobs", token, fiber.Map{
		"title": "Backend Engineer",
	})
	assertStatus(t, response, http.StatusForbidden)
}

func TestPipelineForbiddenForClientSide(t *testing.T) {
	app, _ := newTestApp(t)

	adminID, token := registerAndLogin(t, app, "client@example.com")
	clientID := createOrganization(t, app, "clients", "Acme")
	assignRole(t, app, adminID, "client_administrator", clientID)

	response := jsonRequest(t, app, http.MethodGet, "/api/pipeline", token, nil)
	assertStatus(t, response, http.StatusForbidden)
}
