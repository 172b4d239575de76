package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salarydash/app"
)

func TestAppHealth(t *testing.T) {
	a := NewApp(testConfig(), testDataset())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, float64(3), payload["records"])
}

func TestAppDashboardMatchesWebServer(t *testing.T) {
	a := NewApp(testConfig(), testDataset())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?year=2024", nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data app.DashboardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, 2, data.Metrics.RecordCount)
	assert.NotNil(t, data.Histogram)
}

func TestAppCommaSeparatedFilterValues(t *testing.T) {
	a := NewApp(testConfig(), testDataset())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?seniority=junior,senior", nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data app.DashboardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, 3, data.Metrics.RecordCount)
}
