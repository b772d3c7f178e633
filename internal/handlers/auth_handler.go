package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialStore holds the opaque backend credential: a bearer token
// and an admin flag written at login, cleared at logout.
type CredentialStore interface {
	SetCredentials(token string, isAdmin bool) error
	GetToken() (string, error)
	IsAdmin() (bool, error)
	ClearCredentials() error
}

type AuthHandler struct {
	credentials CredentialStore
}

func NewAuthHandler(credentials CredentialStore) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

type sessionRequest struct {
	Token   string `json:"token" binding:"required"`
	IsAdmin bool   `json:"is_admin"`
}

// CreateSession stores the credential obtained from the backend's login
// flow. The storefront never inspects the token; it only forwards it.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.credentials.SetCredentials(strings.TrimSpace(req.Token), req.IsAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": req.IsAdmin})
}

// GetSession reports whether a credential is stored and whether it
// carries the admin flag. The token itself is never echoed back.
func (h *AuthHandler) GetSession(c *gin.Context) {
	token, err := h.credentials.GetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read credentials"})
		return
	}
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "is_admin": false})
		return
	}

	isAdmin, err := h.credentials.IsAdmin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "is_admin": isAdmin})
}

// DeleteSession clears the stored credential.
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	if err := h.credentials.ClearCredentials(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}
