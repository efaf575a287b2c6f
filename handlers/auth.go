// ABOUTME: Registration and login handlers
// ABOUTME: Login issues a signed token held in a server-side session behind an httpOnly cookie

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/markalston/bookshelf/middleware"
	"github.com/markalston/bookshelf/models"
	"github.com/markalston/bookshelf/store"
)

// Register creates a new user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if err := h.users.Register(req.Username, req.Password); err != nil {
		if err == store.ErrDuplicateUser {
			writeError(w, "Username already exists", http.StatusConflict)
			return
		}
		writeError(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	slog.Info("User registered", "username", req.Username)
	writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: "User registered. You can now login.",
	})
}

// Login verifies credentials, issues a signed token, and creates a
// server-side session. Only the opaque session ID reaches the client.
// Invalid credentials report 404, matching the original API contract.
// Repeated logins simply reissue a fresh token under a new session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if !h.users.Verify(req.Username, req.Password) {
		slog.Warn("Authentication failed", "username", req.Username)
		writeJSON(w, http.StatusNotFound, models.LoginResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		writeError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	session, err := h.sessions.Create(req.Username, token)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		writeError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	h.setSessionCookies(w, session)

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success:  true,
		Username: req.Username,
	})
}

// setSessionCookies sets the httpOnly session cookie, plus the CSRF cookie
// when double-submit protection is enabled.
func (h *Handler) setSessionCookies(w http.ResponseWriter, session *models.Session) {
	secure := true
	maxAge := 3600
	csrf := false
	if h.cfg != nil {
		secure = h.cfg.CookieSecure
		maxAge = h.cfg.TokenTTL
		csrf = h.cfg.CSRFEnabled
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   maxAge,
	})

	if csrf {
		// Readable by scripts so the client can echo it in X-CSRF-Token
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.CSRFCookieName,
			Value:    session.CSRFToken,
			HttpOnly: false,
			Secure:   secure,
			SameSite: http.SameSiteStrictMode,
			Path:     "/",
			MaxAge:   maxAge,
		})
	}
}
