package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialStoreMock struct {
	token   string
	isAdmin bool
}

func (m *credentialStoreMock) SetCredentials(token string, isAdmin bool) error {
	m.token = token
	m.isAdmin = isAdmin
	return nil
}

func (m *credentialStoreMock) GetToken() (string, error) { return m.token, nil }

func (m *credentialStoreMock) IsAdmin() (bool, error) { return m.isAdmin, nil }

func (m *credentialStoreMock) ClearCredentials() error {
	m.token = ""
	m.isAdmin = false
	return nil
}

func newAuthRouter(store CredentialStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(store)

	router := gin.New()
	router.POST("/api/auth/session", handler.CreateSession)
	router.GET("/api/auth/session", handler.GetSession)
	router.DELETE("/api/auth/session", handler.DeleteSession)
	return router
}

func TestSessionLifecycle(t *testing.T) {
	store := &credentialStoreMock{}
	router := newAuthRouter(store)

	// No credential stored yet.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated": false, "is_admin": false}`, w.Body.String())

	// Login stores the token and admin flag.
	w = httptest.NewRecorder()
	body := strings.NewReader(`{"token": "  backend-token  ", "is_admin": true}`)
	req = httptest.NewRequest(http.MethodPost, "/api/auth/session", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "backend-token", store.token)
	assert.True(t, store.isAdmin)

	// The token is reported as present but never echoed back.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated": true, "is_admin": true}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "backend-token")

	// Logout clears everything.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/auth/session", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.token)
	assert.False(t, store.isAdmin)
}

func TestCreateSession_RequiresToken(t *testing.T) {
	store := &credentialStoreMock{}
	router := newAuthRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", strings.NewReader(`{"is_admin": true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.token)
}
