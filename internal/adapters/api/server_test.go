package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

type serverMocks struct {
	controller *mocks.RefreshController
	display    *mocks.ForecastDisplay
	health     *mocks.SystemHealthChecker
	metrics    *mocks.MetricsCollector
}

func setupTestServer(t *testing.T) (*HTTPServerAdapter, serverMocks) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	m := serverMocks{
		controller: mocks.NewRefreshController(t),
		display:    mocks.NewForecastDisplay(t),
		health:     mocks.NewSystemHealthChecker(t),
		metrics:    mocks.NewMetricsCollector(t),
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 8080},
		Controller:          m.controller,
		Display:             m.display,
		SystemHealthChecker: m.health,
		MetricsCollector:    m.metrics,
	})
	require.NoError(t, err)

	return server, m
}

func perform(server *HTTPServerAdapter, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)
	return w
}

func TestServerOptions_Validate(t *testing.T) {
	controller := mocks.NewRefreshController(t)
	display := mocks.NewForecastDisplay(t)
	health := mocks.NewSystemHealthChecker(t)
	metrics := mocks.NewMetricsCollector(t)

	tests := []struct {
		name    string
		opts    ServerOptions
		message string
	}{
		{"MissingController", ServerOptions{Display: display, SystemHealthChecker: health, MetricsCollector: metrics}, "refresh controller is required"},
		{"MissingDisplay", ServerOptions{Controller: controller, SystemHealthChecker: health, MetricsCollector: metrics}, "forecast display is required"},
		{"MissingHealthChecker", ServerOptions{Controller: controller, Display: display, MetricsCollector: metrics}, "system health checker is required"},
		{"MissingMetrics", ServerOptions{Controller: controller, Display: display, SystemHealthChecker: health}, "metrics collector is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewHTTPServerAdapter(tt.opts)
			assert.Nil(t, server)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestHTTPServerAdapter_Addr(t *testing.T) {
	server, _ := setupTestServer(t)
	assert.Equal(t, ":8080", server.Addr())
}

func TestGetForecast(t *testing.T) {
	t.Run("FreshData", func(t *testing.T) {
		server, m := setupTestServer(t)
		m.display.EXPECT().Current().Return(ports.DisplayState{
			Forecast: &ports.ForecastData{
				Location: ports.LocationData{Name: "Moscow"},
				Provider: "weatherapi",
			},
			Source: "fresh",
		}).Once()

		w := perform(server, http.MethodGet, "/api/forecast", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body ports.DisplayState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "fresh", body.Source)
		require.NotNil(t, body.Forecast)
		assert.Equal(t, "Moscow", body.Forecast.Location.Name)
	})

	t.Run("CachedWithNotice", func(t *testing.T) {
		server, m := setupTestServer(t)
		savedAt := time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC)
		m.display.EXPECT().Current().Return(ports.DisplayState{
			Forecast: &ports.ForecastData{Provider: "openmeteo"},
			Source:   "cached",
			SavedAt:  &savedAt,
			Notice:   "Last updated: 18 Oct 2026 08:30",
		}).Once()

		w := perform(server, http.MethodGet, "/api/forecast", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body ports.DisplayState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "cached", body.Source)
		assert.Equal(t, "Last updated: 18 Oct 2026 08:30", body.Notice)
	})

	t.Run("NothingYet", func(t *testing.T) {
		server, m := setupTestServer(t)
		m.display.EXPECT().Current().Return(ports.DisplayState{}).Once()

		w := perform(server, http.MethodGet, "/api/forecast", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No forecast available yet"}`, w.Body.String())
	})

	t.Run("OnlyError", func(t *testing.T) {
		server, m := setupTestServer(t)
		m.display.EXPECT().Current().Return(ports.DisplayState{Error: "No internet connection"}).Once()

		w := perform(server, http.MethodGet, "/api/forecast", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"No internet connection"}`, w.Body.String())
	})
}

func TestTriggerRefresh(t *testing.T) {
	tests := []struct {
		name            string
		body            []byte
		expectedStatus  int
		expectedTrigger string
		expectRefresh   bool
	}{
		{name: "NoBody", expectedStatus: http.StatusAccepted, expectedTrigger: "manual", expectRefresh: true},
		{name: "PullToRefresh", body: []byte(`{"trigger":"pull_to_refresh"}`), expectedStatus: http.StatusAccepted, expectedTrigger: "pull_to_refresh", expectRefresh: true},
		{name: "EmptyTrigger", body: []byte(`{}`), expectedStatus: http.StatusAccepted, expectedTrigger: "manual", expectRefresh: true},
		{name: "UnknownTrigger", body: []byte(`{"trigger":"shake"}`), expectedStatus: http.StatusBadRequest},
		{name: "MalformedJSON", body: []byte(`{"trigger":`), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := setupTestServer(t)
			if tt.expectRefresh {
				m.controller.EXPECT().Refresh().Once()
			}

			w := perform(server, http.MethodPost, "/api/refresh", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectRefresh {
				var body RefreshResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedTrigger, body.Trigger)
			} else {
				assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
			}
		})
	}
}

func TestGetRefreshStatus(t *testing.T) {
	server, m := setupTestServer(t)
	m.controller.EXPECT().State().Return(ports.RefreshState{
		AttemptCount: 2,
		MaxAttempts:  3,
		RetryPending: true,
	}).Once()

	w := perform(server, http.MethodGet, "/api/refresh/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body ports.RefreshState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.AttemptCount)
	assert.True(t, body.RetryPending)
}

func TestGetHealth(t *testing.T) {
	tests := []struct {
		name           string
		results        map[string]ports.HealthStatus
		expectedStatus int
		expectedValue  string
	}{
		{
			name: "Healthy",
			results: map[string]ports.HealthStatus{
				"store":     {Component: "store", Status: "healthy"},
				"providers": {Component: "providers", Status: "healthy"},
			},
			expectedStatus: http.StatusOK,
			expectedValue:  "healthy",
		},
		{
			name: "Degraded",
			results: map[string]ports.HealthStatus{
				"store":   {Component: "store", Status: "healthy"},
				"refresh": {Component: "refresh", Status: "degraded"},
			},
			expectedStatus: http.StatusOK,
			expectedValue:  "degraded",
		},
		{
			name: "Unhealthy",
			results: map[string]ports.HealthStatus{
				"store":     {Component: "store", Status: "degraded"},
				"providers": {Component: "providers", Status: "unhealthy"},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedValue:  "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := setupTestServer(t)
			m.health.EXPECT().CheckAll(mock.Anything).Return(tt.results).Once()

			w := perform(server, http.MethodGet, "/api/health", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body struct {
				Status     string                        `json:"status"`
				Components map[string]ports.HealthStatus `json:"components"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedValue, body.Status)
			assert.Len(t, body.Components, len(tt.results))
		})
	}
}

func TestGetMetrics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, m := setupTestServer(t)
		m.metrics.EXPECT().GetMetrics(mock.Anything).Return(map[string]interface{}{
			"store": map[string]interface{}{"hits": 3},
		}, nil).Once()

		w := perform(server, http.MethodGet, "/api/metrics", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"store":{"hits":3}}`, w.Body.String())
	})

	t.Run("CollectorFails", func(t *testing.T) {
		server, m := setupTestServer(t)
		m.metrics.EXPECT().GetMetrics(mock.Anything).Return(nil, errors.NewDatabaseError("stats unavailable", nil)).Once()

		w := perform(server, http.MethodGet, "/api/metrics", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPrometheusEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
