package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON body with the given status. A nil data writes
// just the status, for endpoints with nothing to return.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent writes 204 with an empty body. Logout uses this: a destroyed
// session has nothing to describe.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
