package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Send an SMS
// @Description Passthrough to the SMS provider. Requires API key when API_KEYS is set.
// @Tags Integrations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sms body SendSMSRequest true "Recipient and text"
// @Success 200 {object} SendSMSResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 501 {object} ErrorResponse "SMS provider is not configured"
// @Failure 502 {object} ErrorResponse "Provider rejected the request"
// @Router /sms/send [post]
func (h *Handler) sendSMS(c *gin.Context) {
	var input SendSMSRequest
	log := h.logger.WithField("method", "sendSMS")

	if !h.bindJSON(c, log, &input) {
		return
	}

	sid, err := h.services.SMS.SendSMS(c.Request.Context(), input.To, input.Message)
	if err != nil {
		h.respondError(c, log, err, "SMS")
		return
	}
	c.JSON(http.StatusOK, SendSMSResponse{Success: true, SID: sid})
}

// @Summary Current weather
// @Description Provider JSON returned as is; cached per ~1 km
// @Tags Integrations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 501 {object} ErrorResponse "Weather provider is not configured"
// @Failure 502 {object} ErrorResponse "Upstream service unavailable"
// @Router /weather/current [get]
func (h *Handler) currentWeather(c *gin.Context) {
	h.weather(c, "currentWeather", h.services.Weather.Current)
}

// @Summary Weather forecast
// @Description Provider JSON returned as is; cached per ~1 km
// @Tags Integrations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 501 {object} ErrorResponse "Weather provider is not configured"
// @Failure 502 {object} ErrorResponse "Upstream service unavailable"
// @Router /weather/forecast [get]
func (h *Handler) weatherForecast(c *gin.Context) {
	h.weather(c, "weatherForecast", h.services.Weather.Forecast)
}

type weatherFetch func(ctx context.Context, lat, lon float64) (json.RawMessage, error)

func (h *Handler) weather(c *gin.Context, method string, fetch weatherFetch) {
	var query WeatherQuery
	log := h.logger.WithField("method", method)

	if !h.bindQuery(c, log, &query) {
		return
	}

	payload, err := fetch(c.Request.Context(), *query.Lat, *query.Lon)
	if err != nil {
		h.respondError(c, log, err, "weather")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
