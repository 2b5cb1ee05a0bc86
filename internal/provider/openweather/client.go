// Package openweather проксирует запросы к OpenWeather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
)

const (
	providerName = "openweather"
	// maxBodySize ограничивает чтение ответа провайдера
	maxBodySize = 1 << 20
	// maxErrorBody - сколько байт тела ошибки попадает в текст ошибки
	maxErrorBody = 256
)

// Client implements service.WeatherProvider.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
	}
}

// Current возвращает текущую погоду в точке
func (c *Client) Current(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return c.get(ctx, "weather", lat, lon)
}

// Forecast возвращает 5-дневный прогноз с шагом 3 часа
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return c.get(ctx, "forecast", lat, lon)
}

func (c *Client) get(ctx context.Context, endpoint string, lat, lon float64) (json.RawMessage, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"units": {"metric"},
		"appid": {c.apiKey},
	}
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: %s request: %v", models.ErrUpstream, endpoint, transportError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: read %s response: %v", models.ErrUpstream, endpoint, transportError(err))
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: openweather API error: status %d: %s", models.ErrUpstream, resp.StatusCode, truncate(body, maxErrorBody))
	}
	if !json.Valid(body) {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: openweather returned invalid JSON", models.ErrUpstream)
	}

	c.metrics.UpstreamRequests.WithLabelValues(providerName, "success").Inc()
	return json.RawMessage(body), nil
}

// transportError убирает из ошибки URL запроса: в нем передается appid
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
