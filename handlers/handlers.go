// ABOUTME: HTTP handler dependencies and JSON response helpers
// ABOUTME: Wires config, stores, and auth services into the handler set

package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/markalston/bookshelf/cache"
	"github.com/markalston/bookshelf/config"
	"github.com/markalston/bookshelf/models"
	"github.com/markalston/bookshelf/services"
	"github.com/markalston/bookshelf/store"
)

// Handler holds every dependency the HTTP handlers need. Stores are injected
// so tests can run against fresh instances.
type Handler struct {
	cfg      *config.Config
	cache    *cache.Cache
	catalog  *store.Catalog
	users    *store.UserDirectory
	tokens   *services.TokenService
	sessions *services.SessionService

	// search collapses concurrent identical catalog searches into one lookup
	search singleflight.Group

	// searchGen versions the search cache keys; review mutations bump it so
	// searches never serve a pre-mutation review snapshot
	searchGen atomic.Int64
}

// NewHandler creates the handler set over the given stores and services.
func NewHandler(cfg *config.Config, c *cache.Cache, catalog *store.Catalog, users *store.UserDirectory, tokens *services.TokenService, sessions *services.SessionService) *Handler {
	return &Handler{
		cfg:      cfg,
		cache:    c,
		catalog:  catalog,
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the shared envelope format.
func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
