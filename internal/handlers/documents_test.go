package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulstack/fleetops/internal/models"
)

func newDocumentHandler(t *testing.T) *DocumentHandler {
	t.Helper()
	h := NewDocumentHandler(newTestStore(t))
	h.now = func() time.Time { return testNow }
	return h
}

func addPermit(t *testing.T, h *DocumentHandler, permit models.Permit) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodPost, "/api/permits", permit))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestDocumentHandler_AddAndListPermits(t *testing.T) {
	h := newDocumentHandler(t)

	addPermit(t, h, models.Permit{
		PlateNumber:  "ABC-123",
		PermitNumber: "RP-001",
		ExpireDate:   dateIn(60),
	})

	rec := httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodGet, "/api/permits?plate_number=ABC-123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var permits []models.Permit
	decodeResponse(t, rec, &permits)
	require.Len(t, permits, 1)
	assert.Equal(t, "RP-001", permits[0].PermitNumber)
}

func TestDocumentHandler_AddPermitRejected(t *testing.T) {
	h := newDocumentHandler(t)

	rec := httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodPost, "/api/permits", models.Permit{PlateNumber: "ABC-123"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_PermitsExpiringWithin(t *testing.T) {
	h := newDocumentHandler(t)

	addPermit(t, h, models.Permit{PlateNumber: "ABC-123", PermitNumber: "RP-001", ExpireDate: dateIn(5)})
	addPermit(t, h, models.Permit{PlateNumber: "ABC-123", PermitNumber: "RP-002", ExpireDate: dateIn(60)})
	addPermit(t, h, models.Permit{PlateNumber: "ABC-123", PermitNumber: "RP-003", ExpireDate: dateIn(-10)})

	rec := httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodGet, "/api/permits?expiring_within=30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var permits []models.Permit
	decodeResponse(t, rec, &permits)
	require.Len(t, permits, 2)
	assert.Equal(t, "RP-001", permits[0].PermitNumber)
	assert.Equal(t, "RP-003", permits[1].PermitNumber)

	// future_only drops documents that have already expired.
	rec = httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodGet, "/api/permits?expiring_within=30&future_only=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	permits = nil
	decodeResponse(t, rec, &permits)
	require.Len(t, permits, 1)
	assert.Equal(t, "RP-001", permits[0].PermitNumber)
}

func TestDocumentHandler_PermitsBadWindow(t *testing.T) {
	h := newDocumentHandler(t)

	rec := httptest.NewRecorder()
	h.Permits(rec, jsonRequest(t, http.MethodGet, "/api/permits?expiring_within=soon", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_Taxes(t *testing.T) {
	h := newDocumentHandler(t)

	rec := httptest.NewRecorder()
	h.Taxes(rec, jsonRequest(t, http.MethodPost, "/api/taxes", models.TaxRecord{
		PlateNumber: "ABC-123",
		TaxAmount:   25000,
		ExpireDate:  dateIn(10),
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Taxes(rec, jsonRequest(t, http.MethodGet, "/api/taxes?expiring_within=30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var taxes []models.TaxRecord
	decodeResponse(t, rec, &taxes)
	require.Len(t, taxes, 1)
	assert.Equal(t, 25000.0, taxes[0].TaxAmount)
}

func TestDocumentHandler_AddTaxRejected(t *testing.T) {
	h := newDocumentHandler(t)

	rec := httptest.NewRecorder()
	h.Taxes(rec, jsonRequest(t, http.MethodPost, "/api/taxes", models.TaxRecord{ExpireDate: dateIn(10)}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
