// Package response holds the JSON response helpers shared by API handlers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/atelierhq/atelier/pkg/orm"
)

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ValidationError writes a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "Validation failed",
		"fields": errs,
	})
}

// Paginated writes items plus pagination metadata.
func Paginated(w http.ResponseWriter, items interface{}, p orm.Pagination) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"pagination": p,
	})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
