package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/haulstack/fleetops/internal/export"
	"github.com/haulstack/fleetops/internal/store"
)

// ExportHandler renders any entity collection as downloadable CSV.
type ExportHandler struct {
	store store.Store
}

// NewExportHandler creates a new export handler.
func NewExportHandler(s store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// Handle dispatches /api/export requests.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	entity := r.URL.Query().Get("type")
	if !store.IsValidEntityType(entity) {
		http.Error(w, "Unknown entity type", http.StatusBadRequest)
		return
	}

	var data any
	switch store.EntityType(entity) {
	case store.EntityVehicles:
		data = h.store.Vehicles()
	case store.EntityMaintenance:
		data = h.store.MaintenanceRecords("")
	case store.EntityInventory:
		data = h.store.Inventory()
	case store.EntityPermits:
		data = h.store.Permits("")
	case store.EntityTokenTax:
		data = h.store.TaxRecords("")
	case store.EntityLoads:
		data = h.store.Loads("")
	}

	rows, err := export.Rows(data)
	if err != nil {
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", entity, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, rows); err != nil {
		http.Error(w, "Failed to write export", http.StatusInternalServerError)
	}
}
