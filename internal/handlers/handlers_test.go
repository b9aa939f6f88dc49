package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/haulstack/fleetops/internal/store"
)

// testNow is the fixed clock used by handlers whose output depends on the
// current date.
var testNow = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func dateIn(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}
