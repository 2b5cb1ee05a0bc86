package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis: processEvent работает только с HTTP
func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return &WebhookWorker{
		logger:     logger,
		cfg:        cfg,
		metrics:    observability.NewMetricsForTesting(),
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func testEvent(t *testing.T) (FamilyEvent, string) {
	t.Helper()
	event := FamilyEvent{
		Kind:        EventMemberStatus,
		HouseholdID: 3,
		MemberID:    9,
		MemberName:  "Alex",
		Status:      models.MemberStatusSafe,
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEvent(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(payload, "s3cret"), r.Header.Get(signatureHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})

	assert.True(t, w.processEvent(context.Background(), event, payload))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.WebhookDeliveries.WithLabelValues("delivered")))
}

func TestProcessEvent_RetriesUntilSuccess(t *testing.T) {
	event, payload := testEvent(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Empty(t, r.Header.Get(signatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})

	assert.True(t, w.processEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 2, WebhookBaseDelay: time.Millisecond})

	assert.False(t, w.processEvent(context.Background(), event, payload))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.WebhookDeliveries.WithLabelValues("failed")))
}

func TestProcessEvent_SkipsWithoutURL(t *testing.T) {
	event, payload := testEvent(t)
	w := newTestWorker(&config.Config{})

	assert.False(t, w.processEvent(context.Background(), event, payload))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.WebhookDeliveries.WithLabelValues("skipped")))
}

func TestGenerateHMACSHA256_Deterministic(t *testing.T) {
	a := generateHMACSHA256(`{"memberId":1}`, "k")
	assert.Len(t, a, 64)
	assert.Equal(t, a, generateHMACSHA256(`{"memberId":1}`, "k"))
	assert.NotEqual(t, a, generateHMACSHA256(`{"memberId":1}`, "other"))
}

func TestNopPublisher(t *testing.T) {
	var p WebhookPublisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), FamilyEvent{MemberID: 1}))
}
