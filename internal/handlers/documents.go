package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/haulstack/fleetops/internal/alerts"
	"github.com/haulstack/fleetops/internal/models"
	"github.com/haulstack/fleetops/internal/store"
)

// DocumentHandler serves route permits and token tax records.
type DocumentHandler struct {
	store store.Store
	now   func() time.Time
}

// NewDocumentHandler creates a new permit/tax handler.
func NewDocumentHandler(s store.Store) *DocumentHandler {
	return &DocumentHandler{store: s, now: time.Now}
}

// Permits dispatches /api/permits requests.
func (h *DocumentHandler) Permits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		permits := h.store.Permits(r.URL.Query().Get("plate_number"))
		permits, ok := filterExpiring(w, r, permits, h.now())
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, permits)
	case http.MethodPost:
		var permit models.Permit
		if !decodeBody(w, r, &permit) {
			return
		}
		res, err := h.store.AddPermit(permit)
		if err != nil {
			http.Error(w, "Failed to save permit", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusCreated, http.StatusBadRequest)
	default:
		methodNotAllowed(w)
	}
}

// Taxes dispatches /api/taxes requests.
func (h *DocumentHandler) Taxes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		taxes := h.store.TaxRecords(r.URL.Query().Get("plate_number"))
		taxes, ok := filterExpiring(w, r, taxes, h.now())
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, taxes)
	case http.MethodPost:
		var tax models.TaxRecord
		if !decodeBody(w, r, &tax) {
			return
		}
		res, err := h.store.AddTaxRecord(tax)
		if err != nil {
			http.Error(w, "Failed to save tax record", http.StatusInternalServerError)
			return
		}
		writeResult(w, res, http.StatusCreated, http.StatusBadRequest)
	default:
		methodNotAllowed(w)
	}
}

// filterExpiring narrows a document list with the expiring_within query
// parameter (in days). Expired documents stay included unless future_only
// is set; reads degrade to 400 only on an unusable parameter or document.
func filterExpiring[T alerts.Expirable](w http.ResponseWriter, r *http.Request, records []T, now time.Time) ([]T, bool) {
	window := r.URL.Query().Get("expiring_within")
	if window == "" {
		return records, true
	}
	days, err := strconv.Atoi(window)
	if err != nil {
		http.Error(w, "expiring_within must be a number of days", http.StatusBadRequest)
		return nil, false
	}

	var filtered []T
	if r.URL.Query().Get("future_only") == "true" {
		filtered, err = alerts.ExpiringStrictlyWithin(records, now, days)
	} else {
		filtered, err = alerts.ExpiringWithin(records, now, days)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return filtered, true
}
