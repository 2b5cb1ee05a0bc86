package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	incidents  *mocks.MockIncidentService
	goBag      *mocks.MockGoBagService
	evacuation *mocks.MockEvacuationService
	family     *mocks.MockFamilyService
	maps       *mocks.MockMapService
	sms        *mocks.MockSMSService
	weather    *mocks.MockWeatherService
}

// newTestRouter создает роутер с мокированными сервисами
func newTestRouter(t *testing.T, cfg *config.Config) (*serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		incidents:  mocks.NewMockIncidentService(ctrl),
		goBag:      mocks.NewMockGoBagService(ctrl),
		evacuation: mocks.NewMockEvacuationService(ctrl),
		family:     mocks.NewMockFamilyService(ctrl),
		maps:       mocks.NewMockMapService(ctrl),
		sms:        mocks.NewMockSMSService(ctrl),
		weather:    mocks.NewMockWeatherService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{}
	}

	handler := NewHandler(Services{
		Incidents:  m.incidents,
		GoBag:      m.goBag,
		Evacuation: m.evacuation,
		Family:     m.family,
		Maps:       m.maps,
		SMS:        m.sms,
		Weather:    m.weather,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestRouter(t, nil)
	reportedAt := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "flood", inc.Type)
			assert.True(t, inc.IsAnonymous)
			require.NotNil(t, inc.Latitude)
			assert.InDelta(t, 14.6, *inc.Latitude, 1e-9)
			inc.ID = 7
			inc.ReportedAt = reportedAt
			return nil
		}).Times(1)

	body := `{"type":"flood","description":"Water rising","location":"Main St","latitude":14.6,"longitude":120.98,"isAnonymous":true}`
	w := makeRequest(router, http.MethodPost, "/api/incidents", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.True(t, resp.ReportedAt.Equal(reportedAt))
	assert.Contains(t, w.Body.String(), `"reportedAt"`)
	assert.Contains(t, w.Body.String(), `"isAnonymous":true`)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/incidents", bytes.NewBufferString(`{"type": "flood"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeError(t, w).Error)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/incidents",
		bytes.NewBufferString(`{"type":"fire","latitude":123}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "validation failed", resp.Error)

	fields := map[string]string{}
	for _, d := range resp.Details {
		fields[d.Field] = d.Rule
	}
	assert.Equal(t, map[string]string{
		"description": "required",
		"location":    "required",
		"latitude":    "latitude",
	}, fields)
}

func TestCreateIncident_WrongType(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/incidents",
		bytes.NewBufferString(`{"type":"fire","description":"x","location":"y","latitude":"north"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, FieldViolation{Field: "latitude", Rule: "type", Message: "must be a number"}, resp.Details[0])
}

func TestCreateIncident_ServiceError(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/incidents", jsonBody(t, CreateIncidentRequest{
		Type: "fire", Description: "smoke", Location: "Block 4",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}

func TestListIncidents_Success(t *testing.T) {
	m, router := newTestRouter(t, nil)
	incidents := []*models.Incident{
		{ID: 1, Type: "flood", ReportedAt: time.Now().Add(-time.Hour)},
		{ID: 2, Type: "fire", ReportedAt: time.Now()},
	}

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].ID)
	assert.Equal(t, int64(2), resp[1].ID)
}

func TestListIncidents_Empty(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return([]*models.Incident{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateGoBagItem(t *testing.T) {
	for _, checked := range []bool{true, false} {
		t.Run(fmt.Sprintf("checked=%v", checked), func(t *testing.T) {
			m, router := newTestRouter(t, nil)

			m.goBag.EXPECT().SetChecked(gomock.Any(), int64(1), checked).
				Return(&models.GoBagItem{ID: 1, Category: "Tools", Name: "Whistle", Checked: checked}, nil).Times(1)

			w := makeRequest(router, http.MethodPatch, "/api/go-bag-items/1", jsonBody(t, map[string]bool{"checked": checked}))

			assert.Equal(t, http.StatusOK, w.Code)
			var item models.GoBagItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
			assert.Equal(t, checked, item.Checked)
		})
	}
}

func TestUpdateGoBagItem_RejectsNonBoolean(t *testing.T) {
	bodies := map[string]string{
		"string":  `{"checked":"yes"}`,
		"number":  `{"checked":1}`,
		"null":    `{"checked":null}`,
		"missing": `{}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			m, router := newTestRouter(t, nil)

			m.goBag.EXPECT().SetChecked(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPatch, "/api/go-bag-items/1", bytes.NewBufferString(body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			require.NotEmpty(t, resp.Details)
			assert.Equal(t, "checked", resp.Details[0].Field)
		})
	}
}

func TestUpdateGoBagItem_InvalidID(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.goBag.EXPECT().SetChecked(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		w := makeRequest(router, http.MethodPatch, "/api/go-bag-items/"+id, bytes.NewBufferString(`{"checked":true}`))
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "invalid id", decodeError(t, w).Error)
	}
}

func TestUpdateGoBagItem_NotFound(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.goBag.EXPECT().SetChecked(gomock.Any(), int64(99), true).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound)).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/go-bag-items/99", bytes.NewBufferString(`{"checked":true}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "go-bag item not found", decodeError(t, w).Error)
}

func TestGoBagProgress(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.goBag.EXPECT().Progress(gomock.Any()).Return(&models.GoBagProgress{Checked: 4, Total: 16, Percent: 25}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/go-bag-items/progress", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"checked":4,"total":16,"percent":25}`, w.Body.String())
}

// Сценарий: отметка первого пункта видна в списке, остальные пункты не меняются
func TestGoBagScenario_CheckFirstItem(t *testing.T) {
	m, router := newTestRouter(t, nil)

	items := []*models.GoBagItem{
		{ID: 1, Category: "Water & Food", Name: "Drinking water"},
		{ID: 2, Category: "First Aid", Name: "First aid kit"},
		{ID: 3, Category: "Tools", Name: "Flashlight"},
	}
	m.goBag.EXPECT().SetChecked(gomock.Any(), int64(1), true).
		DoAndReturn(func(_ context.Context, id int64, checked bool) (*models.GoBagItem, error) {
			items[0].Checked = checked
			return items[0], nil
		}).Times(1)
	m.goBag.EXPECT().ListItems(gomock.Any()).Return(items, nil).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/go-bag-items/1", bytes.NewBufferString(`{"checked":true}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"checked":true`)

	w = makeRequest(router, http.MethodGet, "/api/go-bag-items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.GoBagItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.True(t, listed[0].Checked)
	assert.False(t, listed[1].Checked)
	assert.False(t, listed[2].Checked)
}

func TestUpdateEvacuationCenter_NormalizesStatus(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.evacuation.EXPECT().UpdateCenterStatus(gomock.Any(), int64(2), models.CenterStatusFull).
		Return(&models.EvacuationCenter{ID: 2, Name: "Gym", Status: models.CenterStatusFull}, nil).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/evacuation-centers/2", bytes.NewBufferString(`{"status":" Full "}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"full"`)
}

func TestUpdateEvacuationCenter_UnknownStatus(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.evacuation.EXPECT().UpdateCenterStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/evacuation-centers/2", bytes.NewBufferString(`{"status":"overflowing"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "status", resp.Details[0].Field)
	assert.Equal(t, "oneof", resp.Details[0].Rule)
	assert.Equal(t, "must be one of: open, limited, full, closed", resp.Details[0].Message)
}

func TestUpdateEvacuationCenter_NotFound(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.evacuation.EXPECT().UpdateCenterStatus(gomock.Any(), int64(42), models.CenterStatusClosed).
		Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/evacuation-centers/42", bytes.NewBufferString(`{"status":"closed"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEvacuationCenters_ServiceError(t *testing.T) {
	m, router := newTestRouter(t, nil)

	m.evacuation.EXPECT().ListCenters(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/evacuation-centers", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestRouter(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
