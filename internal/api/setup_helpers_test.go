package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "talentai-api-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, "test-secret", nil)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d (%s)", expected, response.StatusCode, string(raw))
	}
}

// registerAndLogin provisions an account and returns its id plus a bearer
// token.
func registerAndLogin(t *testing.T, app *fiber.App, email string) (uint, string) {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      email,
		"password":   "correct horse battery",
		"first_name": "Test",
	})
	assertStatus(t, response, http.StatusCreated)

	var registered struct {
		ID uint `json:"id"`
	}
	decodeBody(t, response, &registered)

	response = jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "correct horse battery",
	})
	assertStatus(t, response, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, response, &body)
	if body.Token == "" {
		t.Fatal("expected a login token")
	}
	return registered.ID, body.Token
}

func createOrganization(t *testing.T, app *fiber.App, kind string, name string) uint {
	t.Helper()
	response := jsonRequest(t, app, http.MethodPost, fmt.Sprintf("/api/organizations/%s", kind), "", fiber.Map{"name": name})
	assertStatus(t, response, http.StatusCreated)

	var body struct {
		ID uint `json:"ID"`
	}
	decodeBody(t, response, &body)
	if body.ID == 0 {
		t.Fatalf("expected a created %s id", kind)
	}
	return body.ID
}

func assignRole(t *testing.T, app *fiber.App, userID uint, role string, orgID uint) {
	t.Helper()
	response := jsonRequest(t, app, http.MethodPost, "/api/organizations/roles", "", fiber.Map{
		"user_id":         userID,
		"role":            role,
		"organization_id": orgID,
	})
	assertStatus(t, response, http.StatusNoContent)
}
