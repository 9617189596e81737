package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"amica/internal/config"
	"amica/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newTestApp builds a Fiber app with the full route table on top of an
// in-memory store and no Redis.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	st := store.New(store.NewMemoryBackend())
	for _, name := range store.AllCollections() {
		require.NoError(t, st.EnsureCollection(name))
	}

	cfg := &config.Config{
		Port:      "5000",
		JWTSecret: "test-secret-used-only-in-handler-tests",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, st, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

// doJSON sends a JSON request, optionally authenticated, and decodes the
// JSON response body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// registerUser creates an account and returns its token and user id.
func registerUser(t *testing.T, app *fiber.App, email string) (token, userID string) {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	token, ok := body["token"].(string)
	require.True(t, ok)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	userID, ok = user["id"].(string)
	require.True(t, ok)
	return token, userID
}
