package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List hazard zones
// @Tags Map
// @Produce json
// @Success 200 {array} models.HazardZone
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hazard-zones [get]
func (h *Handler) listHazardZones(c *gin.Context) {
	log := h.logger.WithField("method", "listHazardZones")

	zones, err := h.services.Maps.ListHazardZones(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "hazard zone")
		return
	}
	c.JSON(http.StatusOK, zones)
}

// @Summary List points of interest
// @Description Without type all points are returned
// @Tags Map
// @Produce json
// @Param type query string false "Exact POI type, e.g. medical"
// @Success 200 {array} models.Poi
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /pois [get]
func (h *Handler) listPOIs(c *gin.Context) {
	var query POIQuery
	log := h.logger.WithField("method", "listPOIs")

	if !h.bindQuery(c, log, &query) {
		return
	}

	pois, err := h.services.Maps.ListPOIs(c.Request.Context(), query.Type)
	if err != nil {
		h.respondError(c, log, err, "POI")
		return
	}
	c.JSON(http.StatusOK, pois)
}

// @Summary Map provider API key
// @Description Key for the client-side map SDK
// @Tags Map
// @Produce json
// @Success 200 {object} MapAPIKeyResponse
// @Failure 500 {object} ErrorResponse "Key is not configured"
// @Router /config/google-api-key [get]
func (h *Handler) mapAPIKey(c *gin.Context) {
	if h.cfg.GoogleMapsAPIKey == "" {
		h.logger.WithField("method", "mapAPIKey").Error("GOOGLE_MAPS_API_KEY is not set")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "map API key is not configured"})
		return
	}
	c.JSON(http.StatusOK, MapAPIKeyResponse{APIKey: h.cfg.GoogleMapsAPIKey})
}
