package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *observability.Metrics
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		metrics:     metrics,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			// BRPOP - блокирующее извлечение из правой части списка (очереди)
			result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop family event from Redis")
				sleepCtx(ctx, w.cfg.WebhookTimeout) // пауза перед повторной попыткой
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event FamilyEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal family event from Redis")
				continue
			}

			w.processEvent(ctx, event, payload)
		}
	}()
}

// processEvent доставляет событие с экспоненциальной задержкой между попытками
func (w *WebhookWorker) processEvent(ctx context.Context, event FamilyEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_kind":      event.Kind,
		"event_member_id": event.MemberID,
	})
	log.Debug("Processing family event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		w.metrics.WebhookDeliveries.WithLabelValues("skipped").Inc()
		return false
	}

	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			w.metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
			return true
		}

		log.WithError(err).Warnf("Webhook delivery attempt %d/%d failed", attempt, maxRetries)
		if attempt == maxRetries || !sleepCtx(ctx, delay) {
			break
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	w.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
	return false
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// sleepCtx ждет d или отмены контекста; false означает отмену
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
