// Package http provides HTTP handlers for user authentication and expense
// management.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avagyan/expense-tracker/internal/apperrors"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, password string) error
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the plaintext password. It is hashed before storage and
	// never persisted as-is.
	Password string `json:"password"`
}

// Register handles POST /auth/register.
// It expects a JSON body with "username" and "password". Missing fields are
// rejected before any hashing; a taken username yields a conflict response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "message", apperrors.Validation("invalid request"))
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, "message", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles POST /auth/login.
// On valid credentials it responds with a signed access token; otherwise a
// single generic unauthorized response, regardless of which check failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "message", apperrors.Validation("invalid request"))
		return
	}

	accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, "message", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": accessToken})
}
