package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulstack/fleetops/internal/models"
)

func TestVehicleHandler_AddAndList(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/vehicles", models.Vehicle{
		PlateNumber: "abc-123",
		DriverName:  "Ali",
		TankerSize:  20000,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/vehicles", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicles []models.Vehicle
	decodeResponse(t, rec, &vehicles)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "ABC-123", vehicles[0].PlateNumber)
	assert.Equal(t, models.VehicleStatusActive, vehicles[0].Status)
}

func TestVehicleHandler_AddDuplicate(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/vehicles", models.Vehicle{PlateNumber: "ABC-123"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/vehicles", models.Vehicle{PlateNumber: "abc-123"}))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVehicleHandler_AddInvalidJSON(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleHandler_GetByPlate(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/vehicles", models.Vehicle{PlateNumber: "ABC-123"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/vehicles?plate_number=abc-123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicle models.Vehicle
	decodeResponse(t, rec, &vehicle)
	assert.Equal(t, "ABC-123", vehicle.PlateNumber)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/vehicles?plate_number=XYZ-999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVehicleHandler_Update(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/vehicles", models.Vehicle{
		PlateNumber: "ABC-123",
		DriverName:  "Ali",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/vehicles?plate_number=ABC-123", map[string]any{
		"driver_name": "Bilal",
		"status":      models.VehicleStatusMaintenance,
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/vehicles?plate_number=ABC-123", nil))
	var vehicle models.Vehicle
	decodeResponse(t, rec, &vehicle)
	assert.Equal(t, "Bilal", vehicle.DriverName)
	assert.Equal(t, models.VehicleStatusMaintenance, vehicle.Status)
}

func TestVehicleHandler_UpdateMissingPlate(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/vehicles", map[string]any{"driver_name": "Bilal"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleHandler_UpdateNotFound(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPut, "/api/vehicles?plate_number=XYZ-999", map[string]any{"driver_name": "Bilal"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVehicleHandler_MethodNotAllowed(t *testing.T) {
	h := NewVehicleHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodDelete, "/api/vehicles", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
