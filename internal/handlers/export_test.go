package handlers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulstack/fleetops/internal/models"
)

func TestExportHandler_Vehicles(t *testing.T) {
	s := newTestStore(t)
	h := NewExportHandler(s)

	res, err := s.AddVehicle(models.Vehicle{PlateNumber: "ABC-123", DriverName: "Ali"})
	require.NoError(t, err)
	require.True(t, res.OK)

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/export?type=vehicles", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "vehicles_")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "id", rows[0][0])
	assert.Contains(t, rows[0], "plate_number")
	assert.Contains(t, rows[1], "ABC-123")
}

func TestExportHandler_Inventory(t *testing.T) {
	h := NewExportHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodGet, "/api/export?type=inventory", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{models.ItemAirFilter, models.ItemOil, models.ItemTires}, rows[0])
}

func TestExportHandler_UnknownType(t *testing.T) {
	h := NewExportHandler(newTestStore(t))

	tests := []struct {
		name   string
		target string
	}{
		{"missing type", "/api/export"},
		{"unknown type", "/api/export?type=drivers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, jsonRequest(t, http.MethodGet, tt.target, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExportHandler_MethodNotAllowed(t *testing.T) {
	h := NewExportHandler(newTestStore(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(t, http.MethodPost, "/api/export?type=vehicles", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
