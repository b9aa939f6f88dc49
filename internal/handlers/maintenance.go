package handlers

import (
	"net/http"

	"github.com/haulstack/fleetops/internal/models"
	"github.com/haulstack/fleetops/internal/store"
)

// MaintenanceHandler serves the maintenance record collection.
type MaintenanceHandler struct {
	store store.Store
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(s store.Store) *MaintenanceHandler {
	return &MaintenanceHandler{store: s}
}

// Handle dispatches /api/maintenance requests.
func (h *MaintenanceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		plate := r.URL.Query().Get("plate_number")
		writeJSON(w, http.StatusOK, h.store.MaintenanceRecords(plate))
	case http.MethodPost:
		var record models.MaintenanceRecord
		if !decodeBody(w, r, &record) {
			return
		}
		res, err := h.store.AddMaintenanceRecord(record)
		if err != nil {
			http.Error(w, "Failed to save maintenance record", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusCreated, http.StatusBadRequest)
	default:
		methodNotAllowed(w)
	}
}
