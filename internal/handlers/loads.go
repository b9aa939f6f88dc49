package handlers

import (
	"net/http"

	"github.com/haulstack/fleetops/internal/models"
	"github.com/haulstack/fleetops/internal/store"
)

// LoadHandler serves the load collection.
type LoadHandler struct {
	store store.Store
}

// NewLoadHandler creates a new load handler.
func NewLoadHandler(s store.Store) *LoadHandler {
	return &LoadHandler{store: s}
}

// Handle dispatches /api/loads requests.
func (h *LoadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Loads(r.URL.Query().Get("plate_number")))
	case http.MethodPost:
		var load models.Load
		if !decodeBody(w, r, &load) {
			return
		}
		res, err := h.store.AddLoad(load)
		if err != nil {
			http.Error(w, "Failed to save load", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusCreated, http.StatusBadRequest)
	case http.MethodPut:
		loadNumber := r.URL.Query().Get("load_number")
		if loadNumber == "" {
			http.Error(w, "load_number is required", http.StatusBadRequest)
			return
		}
		var update models.LoadUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		res, err := h.store.UpdateLoad(loadNumber, update)
		if err != nil {
			http.Error(w, "Failed to save load", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusOK, http.StatusNotFound)
	default:
		methodNotAllowed(w)
	}
}
