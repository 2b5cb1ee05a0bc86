package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Изменение статусов закрыто ключом, только если API_KEYS задан
	var guard []gin.HandlerFunc
	if len(h.cfg.APIKeys) > 0 {
		guard = append(guard, APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guard...), handler)
	}

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
	}

	goBag := api.Group("/go-bag-items")
	{
		goBag.GET("", h.listGoBagItems)
		goBag.GET("/progress", h.goBagProgress)
		goBag.PATCH("/:id", h.updateGoBagItem)
	}

	centers := api.Group("/evacuation-centers")
	{
		centers.GET("", h.listEvacuationCenters)
		centers.PATCH("/:id", guarded(h.updateEvacuationCenter)...)
	}

	// Семья: домохозяйства, члены, отметки
	api.GET("/households", h.listHouseholds)
	api.POST("/households", h.createHousehold)
	api.GET("/households/:householdId/members", h.listMembers)
	api.POST("/members", h.createMember)
	api.PATCH("/members/:id/status", guarded(h.updateMemberStatus)...)
	api.GET("/members/:id/check-ins", h.listCheckIns)
	api.POST("/check-ins", h.createCheckIn)

	// Карта
	api.GET("/hazard-zones", h.listHazardZones)
	api.GET("/pois", h.listPOIs)
	api.GET("/config/google-api-key", h.mapAPIKey)

	// Внешние сервисы
	api.POST("/sms/send", guarded(h.sendSMS)...)
	api.GET("/weather/current", h.currentWeather)
	api.GET("/weather/forecast", h.weatherForecast)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
