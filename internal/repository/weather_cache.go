package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

// WeatherCache хранит ответы погодного API в Redis
type WeatherCache struct {
	client *redis.Client
}

func NewWeatherCache(client *redis.Client) service.WeatherCache {
	return &WeatherCache{client: client}
}

func (c *WeatherCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weather cache: %w", err)
	}
	return json.RawMessage(data), nil
}

func (c *WeatherCache) Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, []byte(payload), ttl).Err(); err != nil {
		return fmt.Errorf("failed to write weather cache: %w", err)
	}
	return nil
}
