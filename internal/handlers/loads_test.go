package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulstack/fleetops/internal/models"
)

func addLoad(t *testing.T, h *LoadHandler, load models.Load) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/loads", load))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLoadHandler_AddAndList(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	addLoad(t, h, models.Load{
		PlateNumber:    "ABC-123",
		GrossWeight:    10000,
		TareWeight:     4000,
		RatePerUnit:    2.5,
		AdvancePayment: 5000,
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/loads", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var loads []models.Load
	decodeResponse(t, rec, &loads)
	require.Len(t, loads, 1)
	assert.Equal(t, "LD000001", loads[0].LoadNumber)
	assert.Equal(t, 6000.0, loads[0].NetWeight)
	assert.Equal(t, 15000.0, loads[0].Amount)
	assert.Equal(t, 10000.0, loads[0].PendingAmount)
	assert.Equal(t, models.LoadStatusLoading, loads[0].Status)
}

func TestLoadHandler_AddRejected(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/loads", models.Load{
		PlateNumber: "ABC-123",
		GrossWeight: 4000,
		TareWeight:  4000,
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Net weight must be positive")
}

func TestLoadHandler_FilterByPlate(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	addLoad(t, h, models.Load{PlateNumber: "ABC-123", GrossWeight: 10000, TareWeight: 4000})
	addLoad(t, h, models.Load{PlateNumber: "XYZ-999", GrossWeight: 12000, TareWeight: 5000})

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/loads?plate_number=XYZ-999", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var loads []models.Load
	decodeResponse(t, rec, &loads)
	require.Len(t, loads, 1)
	assert.Equal(t, "LD000002", loads[0].LoadNumber)
}

func TestLoadHandler_Update(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	addLoad(t, h, models.Load{PlateNumber: "ABC-123", GrossWeight: 10000, TareWeight: 4000, RatePerUnit: 2})

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/loads?load_number=LD000001", map[string]any{
		"status":        models.LoadStatusDelivered,
		"rate_per_unit": 3,
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/loads", nil))
	var loads []models.Load
	decodeResponse(t, rec, &loads)
	require.Len(t, loads, 1)
	assert.Equal(t, models.LoadStatusDelivered, loads[0].Status)
	assert.Equal(t, 18000.0, loads[0].Amount)
}

func TestLoadHandler_UpdateMissingNumber(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/loads", map[string]any{"status": models.LoadStatusDelivered}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadHandler_UpdateNotFound(t *testing.T) {
	h := NewLoadHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/loads?load_number=LD999999", map[string]any{
		"status": models.LoadStatusDelivered,
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
