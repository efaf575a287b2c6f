// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with methods, auth gating, and rate limit classes

package handlers

import "net/http"

// Rate limit classes. Registration and login share the strict auth budget;
// review mutation uses the write budget; everything else the default.
const (
	RateClassAuth    = "auth"
	RateClassWrite   = "write"
	RateClassDefault = "default"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method    string           // HTTP method (GET, POST, etc.)
	Path      string           // URL pattern (e.g., "/isbn/{isbn}")
	Handler   http.HandlerFunc // Handler function
	Protected bool             // Gated behind a valid session credential
	RateClass string           // Rate limit class (defaults to RateClassDefault)
}

// Routes returns all API routes for registration. Login is deliberately NOT
// behind the session gate: only /customer/auth/ routes require a credential.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},

		// Public catalog
		{Method: http.MethodGet, Path: "/{$}", Handler: h.ListBooks},
		{Method: http.MethodGet, Path: "/isbn/{isbn}", Handler: h.GetBookByISBN},
		{Method: http.MethodGet, Path: "/author/{author}", Handler: h.SearchByAuthor},
		{Method: http.MethodGet, Path: "/title/{title}", Handler: h.SearchByTitle},
		{Method: http.MethodGet, Path: "/review/{isbn}", Handler: h.GetReviews},

		// Accounts
		{Method: http.MethodPost, Path: "/register", Handler: h.Register, RateClass: RateClassAuth},
		{Method: http.MethodPost, Path: "/customer/login", Handler: h.Login, RateClass: RateClassAuth},

		// Authenticated review mutation
		{Method: http.MethodPut, Path: "/customer/auth/review/{isbn}", Handler: h.PutReview, Protected: true, RateClass: RateClassWrite},
		{Method: http.MethodDelete, Path: "/customer/auth/review/{isbn}", Handler: h.DeleteReview, Protected: true, RateClass: RateClassWrite},
	}
}
