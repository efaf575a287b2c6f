// ABOUTME: Session credential gate for authenticated review routes
// ABOUTME: Resolves the session cookie to a verified username in the request context

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/markalston/bookshelf/services"
)

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "BOOKSHELF_SESSION"

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const usernameKey contextKey = "username"

// Auth returns middleware gating routes behind a valid session credential.
// A request with no session at all is rejected as "Not logged in"; a request
// whose session carries a token that fails verification is rejected as
// "Not authenticated". On success the resolved username is attached to the
// request context for the handler.
func Auth(sessions *services.SessionService, tokens *services.TokenService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				slog.Debug("Auth rejected: no session cookie", "path", r.URL.Path)
				writeJSONError(w, "Not logged in", http.StatusForbidden)
				return
			}

			session, err := sessions.Get(cookie.Value)
			if err != nil {
				slog.Debug("Auth rejected: unknown session", "path", r.URL.Path)
				writeJSONError(w, "Not logged in", http.StatusForbidden)
				return
			}

			username, err := tokens.Verify(session.Token)
			if err != nil {
				slog.Debug("Auth rejected: invalid token", "path", r.URL.Path, "user", session.Username)
				writeJSONError(w, "Not authenticated", http.StatusForbidden)
				return
			}

			slog.Debug("Auth: valid session", "path", r.URL.Path, "user", username)
			next(w, r.WithContext(WithUsername(r.Context(), username)))
		}
	}
}

// WithUsername returns a context carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername extracts the authenticated username from the request context.
// Returns an empty string if the request did not pass the auth gate.
func GetUsername(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}
