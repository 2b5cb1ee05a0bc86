package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_preparedness/internal/models"
)

// @Summary List evacuation centers
// @Tags Evacuation
// @Produce json
// @Success 200 {array} models.EvacuationCenter
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /evacuation-centers [get]
func (h *Handler) listEvacuationCenters(c *gin.Context) {
	log := h.logger.WithField("method", "listEvacuationCenters")

	centers, err := h.services.Evacuation.ListCenters(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "evacuation center")
		return
	}
	c.JSON(http.StatusOK, centers)
}

// @Summary Update evacuation center status
// @Description Status is one of open, limited, full, closed (case-insensitive). Requires API key when API_KEYS is set.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Center ID"
// @Param status body UpdateCenterStatusRequest true "New status"
// @Success 200 {object} models.EvacuationCenter
// @Failure 400 {object} ErrorResponse "Invalid id or body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Center not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /evacuation-centers/{id} [patch]
func (h *Handler) updateEvacuationCenter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEvacuationCenter").WithField("id", id)

	var input UpdateCenterStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	center, err := h.services.Evacuation.UpdateCenterStatus(c.Request.Context(), id, models.CenterStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err, "evacuation center")
		return
	}
	c.JSON(http.StatusOK, center)
}
