package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Report an incident
// @Description Save a resident's incident report. reportedAt is set by the server.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.services.Incidents.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary List incidents
// @Description All incident reports ordered by reportedAt, oldest first
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}
