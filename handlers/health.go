// ABOUTME: Health check endpoint
// ABOUTME: Reports service liveness and store sizes

package handlers

import (
	"net/http"

	"github.com/markalston/bookshelf/models"
)

// Health reports liveness plus catalog and user counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Books:  h.catalog.Count(),
		Users:  h.users.Count(),
	})
}
