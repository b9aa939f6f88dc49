package handlers

import (
	"net/http"

	"github.com/haulstack/fleetops/internal/store"
)

// InventoryHandler serves the inventory record.
type InventoryHandler struct {
	store store.Store
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(s store.Store) *InventoryHandler {
	return &InventoryHandler{store: s}
}

// inventoryUpdateRequest is the body for stock adjustments.
type inventoryUpdateRequest struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	Operation string `json:"operation"` // "add", "subtract" or "set"
}

// Handle dispatches /api/inventory requests.
func (h *InventoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Inventory())
	case http.MethodPost:
		var req inventoryUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Operation == "" {
			req.Operation = string(store.OpAdd)
		}
		res, err := h.store.UpdateInventory(req.Item, req.Quantity, store.InventoryOp(req.Operation))
		if err != nil {
			http.Error(w, "Failed to save inventory", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusOK, http.StatusBadRequest)
	default:
		methodNotAllowed(w)
	}
}

// Reset handles /api/inventory/reset, zeroing all stock levels.
func (h *InventoryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	res, err := h.store.ResetInventory()
	if err != nil {
		http.Error(w, "Failed to save inventory", http.StatusInternalServerError)
		return
	}
	writeResult(w, res, http.StatusOK, http.StatusBadRequest)
}
