package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_preparedness/internal/models"
)

const (
	webhookQueueKey = "family_events"
)

// EventKind - тип события семьи
type EventKind string

const (
	EventMemberStatus EventKind = "member_status"
	EventCheckIn      EventKind = "check_in"
)

// FamilyEvent - структура для данных вебхука
type FamilyEvent struct {
	Kind        EventKind           `json:"kind"`
	HouseholdID int64               `json:"householdId,omitempty"`
	MemberID    int64               `json:"memberId"`
	MemberName  string              `json:"memberName,omitempty"`
	Status      models.MemberStatus `json:"status,omitempty"`
	IsSafe      *bool               `json:"isSafe,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event FamilyEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event FamilyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal family event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish family event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, когда WEBHOOK_URL не задан
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, FamilyEvent) error { return nil }
