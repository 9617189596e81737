package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLostItem(t *testing.T, app *fiber.App, token string) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/lost-items/", token, map[string]string{
		"title":       "Blue backpack",
		"description": "Left in lecture hall B",
		"location":    "Lecture hall B",
		"date":        "2026-08-25",
		"category":    "bags",
	})
	require.Equal(t, http.StatusCreated, status)
	return body
}

func TestCreateLostItem(t *testing.T) {
	app := newTestApp(t)
	token, userID := registerUser(t, app, "jordan@campus.edu")

	item := createLostItem(t, app, token)
	assert.NotEmpty(t, item["id"])
	assert.Equal(t, userID, item["userId"])
	assert.Equal(t, "lost", item["status"])
	assert.NotEmpty(t, item["createdAt"])
}

func TestCreateLostItemValidation(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "jordan@campus.edu")

	status, body := doJSON(t, app, http.MethodPost, "/api/lost-items/", token, map[string]string{
		"title": "Blue backpack",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	violations := body["errors"].([]any)
	assert.Len(t, violations, 3)
}

func TestListAndGetLostItems(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "jordan@campus.edu")
	item := createLostItem(t, app, token)

	status, items := doJSONList(t, app, http.MethodGet, "/api/lost-items/", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	assert.Equal(t, item["id"], items[0]["id"])

	id := item["id"].(string)
	status, body := doJSON(t, app, http.MethodGet, "/api/lost-items/"+id, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Blue backpack", body["title"])
}

func TestUpdateLostItem(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "jordan@campus.edu")
	item := createLostItem(t, app, token)
	id := item["id"].(string)

	status, body := doJSON(t, app, http.MethodPut, "/api/lost-items/"+id, token, map[string]string{
		"status": "found",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "found", body["status"])
	assert.Equal(t, "Blue backpack", body["title"])
	assert.NotEmpty(t, body["updatedAt"])
}

func TestUpdateLostItemForeignOwner(t *testing.T) {
	app := newTestApp(t)
	ownerToken, _ := registerUser(t, app, "jordan@campus.edu")
	otherToken, _ := registerUser(t, app, "casey@campus.edu")
	item := createLostItem(t, app, ownerToken)
	id := item["id"].(string)

	// A foreign owner gets a 404, not a 403, so the endpoint does not leak
	// which ids exist.
	status, body := doJSON(t, app, http.MethodPut, "/api/lost-items/"+id, otherToken, map[string]string{
		"title": "hijacked",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	// And the record is unchanged.
	status, body = doJSON(t, app, http.MethodGet, "/api/lost-items/"+id, otherToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Blue backpack", body["title"])
}

func TestDeleteLostItem(t *testing.T) {
	app := newTestApp(t)
	ownerToken, _ := registerUser(t, app, "jordan@campus.edu")
	otherToken, _ := registerUser(t, app, "casey@campus.edu")
	item := createLostItem(t, app, ownerToken)
	id := item["id"].(string)

	status, _ := doJSON(t, app, http.MethodDelete, "/api/lost-items/"+id, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doJSON(t, app, http.MethodDelete, "/api/lost-items/"+id, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Item deleted successfully", body["message"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/lost-items/"+id, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
