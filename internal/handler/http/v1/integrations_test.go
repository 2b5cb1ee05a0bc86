package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListPOIs_PassesTypeFilter(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.maps.EXPECT().ListPOIs(gomock.Any(), "medical").
		Return([]*models.Poi{{ID: 1, Name: "City General Hospital", Type: "medical", Available: true}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/pois?type=medical", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var pois []models.Poi
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pois))
	require.Len(t, pois, 1)
	assert.Equal(t, "medical", pois[0].Type)
}

func TestListPOIs_NoFilter(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.maps.EXPECT().ListPOIs(gomock.Any(), "").Return([]*models.Poi{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/pois", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListHazardZones(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.maps.EXPECT().ListHazardZones(gomock.Any()).Return([]*models.HazardZone{{
		ID: 1, Name: "Riverside", Type: "flood", Severity: "high",
		Coordinates: []models.Coordinate{{Latitude: 14.59, Longitude: 120.97}},
	}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/hazard-zones", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coordinates":[{"latitude":14.59,"longitude":120.97}]`)
}

func TestMapAPIKey(t *testing.T) {
	_, router := newTestRouter(t, &config.Config{GoogleMapsAPIKey: "maps-key"})

	w := makeRequest(router, http.MethodGet, "/api/config/google-api-key", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"apiKey":"maps-key"}`, w.Body.String())
}

func TestMapAPIKey_NotConfigured(t *testing.T) {
	_, router := newTestRouter(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/config/google-api-key", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "map API key is not configured", decodeError(t, w).Error)
}

func TestSendSMS_Success(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.sms.EXPECT().SendSMS(gomock.Any(), "+639170000001", "I am safe").Return("SM123", nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/sms/send", bytes.NewBufferString(`{"to":"+639170000001","message":"I am safe"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"sid":"SM123"}`, w.Body.String())
}

func TestSendSMS_Errors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not configured", fmt.Errorf("service: %w", models.ErrProviderNotConfigured), http.StatusNotImplemented, "SMS service is not configured"},
		{"upstream", fmt.Errorf("twilio: %w", models.ErrUpstream), http.StatusBadGateway, "upstream service unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, router := newTestRouter(t, nil)

			m.sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tc.err).Times(1)

			w := makeRequest(router, http.MethodPost, "/api/sms/send", bytes.NewBufferString(`{"to":"+15550001111","message":"hi"}`))

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.message, decodeError(t, w).Error)
		})
	}
}

func TestSendSMS_InvalidPhone(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/sms/send", bytes.NewBufferString(`{"to":"call me","message":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "to", resp.Details[0].Field)
	assert.Equal(t, "e164", resp.Details[0].Rule)
	assert.Equal(t, "message", resp.Details[1].Field)
}

func TestWeather_PassesUpstreamJSONThrough(t *testing.T) {
	m, router := newTestRouter(t, nil)
	payload := json.RawMessage(`{"weather":[{"main":"Rain"}],"main":{"temp":27.5}}`)

	m.weather.EXPECT().Current(gomock.Any(), 14.6, 120.98).Return(payload, nil).Times(1)
	m.weather.EXPECT().Forecast(gomock.Any(), 14.6, 120.98).Return(json.RawMessage(`{"list":[]}`), nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/weather/current?lat=14.6&lon=120.98", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(payload), w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	w = makeRequest(router, http.MethodGet, "/api/weather/forecast?lat=14.6&lon=120.98", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"list":[]}`, w.Body.String())
}

func TestWeather_InvalidCoordinates(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.weather.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{"", "?lat=14.6", "?lat=abc&lon=1", "?lat=95&lon=10"} {
		w := makeRequest(router, http.MethodGet, "/api/weather/current"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestWeather_NotConfigured(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.weather.EXPECT().Forecast(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrProviderNotConfigured).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/weather/forecast?lat=1&lon=2", nil)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "weather service is not configured", decodeError(t, w).Error)
}
