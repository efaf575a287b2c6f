// ABOUTME: JSON error response helper for middleware
// ABOUTME: Emits the same error envelope the handlers use

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/markalston/bookshelf/models"
)

// writeJSONError writes an error response in the shared envelope format, so
// rejections from middleware look identical to handler errors.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
