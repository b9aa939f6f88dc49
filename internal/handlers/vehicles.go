package handlers

import (
	"net/http"

	"github.com/haulstack/fleetops/internal/models"
	"github.com/haulstack/fleetops/internal/store"
)

// VehicleHandler serves the vehicle collection.
type VehicleHandler struct {
	store store.Store
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(s store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// Handle dispatches /api/vehicles requests.
func (h *VehicleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	if plate := r.URL.Query().Get("plate_number"); plate != "" {
		vehicle, ok := h.store.VehicleByPlate(plate)
		if !ok {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
		return
	}
	writeJSON(w, http.StatusOK, h.store.Vehicles())
}

func (h *VehicleHandler) add(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	res, err := h.store.AddVehicle(vehicle)
	if err != nil {
		http.Error(w, "Failed to save vehicle", http.StatusInternalServerError)
		return
	}
	writeResult(w, res, http.StatusCreated, http.StatusConflict)
}

func (h *VehicleHandler) update(w http.ResponseWriter, r *http.Request) {
	plate := r.URL.Query().Get("plate_number")
	if plate == "" {
		http.Error(w, "plate_number is required", http.StatusBadRequest)
		return
	}
	var update models.VehicleUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	res, err := h.store.UpdateVehicle(plate, update)
	if err != nil {
		http.Error(w, "Failed to save vehicle", http.StatusInternalServerError)
		return
	}
	writeResult(w, res, http.StatusOK, http.StatusNotFound)
}
