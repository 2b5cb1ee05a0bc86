package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

func testClient(baseURL string) *Client {
	c := NewClient(testKey, 5*time.Second, observability.NewMetricsForTesting())
	c.baseURL = baseURL
	return c
}

func TestClient_Current_PassesThroughBody(t *testing.T) {
	const body = `{"weather":[{"main":"Rain"}],"main":{"temp":27.1}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "14.5995", r.URL.Query().Get("lat"))
		assert.Equal(t, "120.9842", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, testKey, r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	payload, err := c.Current(context.Background(), 14.5995, 120.9842)

	require.NoError(t, err)
	assert.JSONEq(t, body, string(payload))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("openweather", "success")))
}

func TestClient_Forecast_UsesForecastEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer srv.Close()

	payload, err := testClient(srv.URL).Forecast(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[]}`, string(payload))
}

func TestClient_Current_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Current(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUpstream)
	assert.Contains(t, err.Error(), "status 401")
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("openweather", "error")))
}

func TestClient_Current_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Current(context.Background(), 1, 2)
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestClient_Unreachable_DoesNotExposeAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient("SECRET-APPID-123", time.Second, observability.NewMetricsForTesting())
	c.baseURL = srv.URL

	_, err := c.Current(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUpstream)
	assert.NotContains(t, err.Error(), "SECRET-APPID-123")
	assert.NotContains(t, err.Error(), "appid")
	assert.Contains(t, err.Error(), "weather request")
}

func TestClient_APIError_TruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(strings.Repeat("x", 10_000)))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Forecast(context.Background(), 1, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Less(t, len(err.Error()), 512)
}

func TestClient_OversizedBodyIsCut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"pad":"` + strings.Repeat("a", maxBodySize) + `"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Current(context.Background(), 1, 2)

	// обрезанный ответ уже не является валидным JSON
	assert.ErrorIs(t, err, models.ErrUpstream)
}
