package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{requestIDHeader: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))
	assert.Equal(t, "req-1", w.Body.String())

	w = makeRequest(router, http.MethodGet, "/ping", nil)
	generated := w.Header().Get(requestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestAccessLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(), AccessLogMiddleware(logger))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	makeRequest(router, http.MethodGet, "/missing", nil, map[string]string{requestIDHeader: "abc"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/missing", entry["path"])
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := observability.NewMetricsForTesting()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware(metrics))
	router.GET("/api/members/:id/check-ins", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	makeRequest(router, http.MethodGet, "/api/members/1/check-ins", nil)
	makeRequest(router, http.MethodGet, "/api/members/2/check-ins", nil)
	makeRequest(router, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/api/members/:id/check-ins", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
