package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	app := newTestApp(t)
	token, userID := registerUser(t, app, "jordan@campus.edu")

	status, body := doJSON(t, app, http.MethodGet, "/api/users/profile/"+userID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "jordan@campus.edu", body["email"])
	assert.NotContains(t, body, "password")
}

func TestGetProfileUnknownID(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "jordan@campus.edu")

	status, body := doJSON(t, app, http.MethodGet, "/api/users/profile/no-such-user", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t)
	token, userID := registerUser(t, app, "jordan@campus.edu")

	status, body := doJSON(t, app, http.MethodPut, "/api/users/profile/"+userID, token, map[string]string{
		"name": "Jordan L.",
		"bio":  "Second-year history student",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Jordan L.", body["name"])
	assert.Equal(t, "Second-year history student", body["bio"])
	// Untouched fields survive the patch.
	assert.Equal(t, "jordan@campus.edu", body["email"])
}

func TestUpdateProfileIsSelfOnly(t *testing.T) {
	app := newTestApp(t)
	_, targetID := registerUser(t, app, "jordan@campus.edu")
	otherToken, _ := registerUser(t, app, "casey@campus.edu")

	status, body := doJSON(t, app, http.MethodPut, "/api/users/profile/"+targetID, otherToken, map[string]string{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	// The target profile is untouched.
	status, body = doJSON(t, app, http.MethodGet, "/api/users/profile/"+targetID, otherToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Test User", body["name"])
}
