package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/duet-app/duet/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "duet.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	handler := NewHandler(database, "test-secret", time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

type accountPayload struct {
	Account struct {
		ID      uint `json:"id"`
		IsAdmin bool `json:"is_admin"`
	} `json:"account"`
	Token string `json:"token"`
}

func registerAccount(t *testing.T, app *fiber.App, email string, password string) (uint, string) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, response.StatusCode)
	}

	payload := accountPayload{}
	decodeJSON(t, response, &payload)
	return payload.Account.ID, payload.Token
}

func loginAccount(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, response.StatusCode)
	}

	payload := accountPayload{}
	decodeJSON(t, response, &payload)
	return payload.Token
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, response.StatusCode)
	}
	response.Body.Close()
}
