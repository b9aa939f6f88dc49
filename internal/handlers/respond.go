// Package handlers exposes the store and derived views over HTTP. This is
// the contract the presentation layer consumes; rendering, charting and
// input forms live outside this module.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/haulstack/fleetops/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult maps a store outcome onto the response: OK results render as
// a message payload, failures render their message with failStatus.
func writeResult(w http.ResponseWriter, res store.Result, okStatus, failStatus int) {
	if !res.OK {
		http.Error(w, res.Message, failStatus)
		return
	}
	writeJSON(w, okStatus, map[string]string{"message": res.Message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}
