package v1

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		APIKeys: []string{"valid-key", "other-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/test", nil, map[string]string{"X-API-Key": "other-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid API key")
}

func TestRoutes_GuardOnlyStatusMutations(t *testing.T) {
	m, router := newTestRouter(t, &config.Config{APIKeys: []string{"secret"}})

	// без ключа изменения статусов отклоняются, сервис не вызывается
	m.family.EXPECT().UpdateMemberStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.evacuation.EXPECT().UpdateCenterStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/members/1/status", bytes.NewBufferString(`{"status":"safe"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = makeRequest(router, http.MethodPatch, "/api/evacuation-centers/1", bytes.NewBufferString(`{"status":"open"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = makeRequest(router, http.MethodPost, "/api/sms/send", bytes.NewBufferString(`{"to":"+15550001111","message":"hi"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// чтение остается открытым
	m.goBag.EXPECT().ListItems(gomock.Any()).Return([]*models.GoBagItem{}, nil).Times(1)
	w = makeRequest(router, http.MethodGet, "/api/go-bag-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_GuardAcceptsKey(t *testing.T) {
	m, router := newTestRouter(t, &config.Config{APIKeys: []string{"secret"}})

	m.evacuation.EXPECT().UpdateCenterStatus(gomock.Any(), int64(1), models.CenterStatusOpen).
		Return(&models.EvacuationCenter{ID: 1, Status: models.CenterStatusOpen}, nil).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/evacuation-centers/1", bytes.NewBufferString(`{"status":"open"}`),
		map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
}
