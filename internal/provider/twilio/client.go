// Package twilio отправляет SMS через Twilio Messages API.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	providerName = "twilio"
	// maxBodySize ограничивает чтение ответа Twilio
	maxBodySize = 1 << 20
)

// Client implements service.SMSSender.
type Client struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *logrus.Logger
}

func NewClient(accountSID, authToken, from string, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    "https://api.twilio.com/2010-04-01",
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

// Send отправляет сообщение и возвращает SID, присвоенный Twilio
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(c.accountSID))
	form := url.Values{
		"To":   {to},
		"From": {c.from},
		"Body": {body},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return "", fmt.Errorf("%w: twilio request: %v", models.ErrUpstream, transportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		var apiErr errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			c.logger.WithFields(logrus.Fields{
				"provider":   providerName,
				"status":     resp.StatusCode,
				"error_code": apiErr.Code,
			}).Warn(apiErr.Message)
		}
		return "", fmt.Errorf("%w: twilio API error: status %d", models.ErrUpstream, resp.StatusCode)
	}

	var msg messageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&msg); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(providerName, "error").Inc()
		return "", fmt.Errorf("%w: decode twilio response: %v", models.ErrUpstream, err)
	}

	c.metrics.UpstreamRequests.WithLabelValues(providerName, "success").Inc()
	return msg.SID, nil
}

// transportError убирает из ошибки URL запроса: в пути передается SID аккаунта
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// Twilio API response types.

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
