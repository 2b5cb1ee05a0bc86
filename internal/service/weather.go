package service

//go:generate mockgen -source=weather.go -destination=mocks/mock_weather.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	weatherCurrent  = "current"
	weatherForecast = "forecast"
)

// WeatherProvider - внешний погодный API; ответ отдается клиенту как есть
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (json.RawMessage, error)
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// WeatherCache возвращает (nil, nil) при промахе
type WeatherCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error
}

type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) (json.RawMessage, error)
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

type weatherService struct {
	provider WeatherProvider
	cache    WeatherCache
	ttl      time.Duration
	metrics  *observability.Metrics
	logger   *logrus.Logger
}

// NewWeatherService принимает nil provider, если ключ API не задан
func NewWeatherService(provider WeatherProvider, cache WeatherCache, ttl time.Duration, metrics *observability.Metrics, logger *logrus.Logger) WeatherService {
	return &weatherService{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *weatherService) Current(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return s.fetch(ctx, weatherCurrent, lat, lon)
}

func (s *weatherService) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return s.fetch(ctx, weatherForecast, lat, lon)
}

func (s *weatherService) fetch(ctx context.Context, kind string, lat, lon float64) (json.RawMessage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "weather",
		"kind":    kind,
		"lat":     lat,
		"lon":     lon,
	})

	if s.provider == nil {
		log.Warn("Weather provider is not configured")
		return nil, fmt.Errorf("service: weather: %w", models.ErrProviderNotConfigured)
	}

	key := weatherCacheKey(kind, lat, lon)
	if cached, err := s.cache.Get(ctx, key); err != nil {
		log.WithError(err).Warn("Failed to read weather cache")
	} else if cached != nil {
		s.metrics.WeatherCache.WithLabelValues(kind, "hit").Inc()
		return cached, nil
	}
	s.metrics.WeatherCache.WithLabelValues(kind, "miss").Inc()

	var (
		payload json.RawMessage
		err     error
	)
	if kind == weatherForecast {
		payload, err = s.provider.Forecast(ctx, lat, lon)
	} else {
		payload, err = s.provider.Current(ctx, lat, lon)
	}
	if err != nil {
		log.WithError(err).Error("Failed to fetch weather from provider")
		return nil, fmt.Errorf("service: could not fetch %s weather: %w", kind, err)
	}

	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		log.WithError(err).Warn("Failed to write weather cache")
	}
	return payload, nil
}

// weatherCacheKey округляет координаты до ~1 км, чтобы соседние запросы попадали в кэш
func weatherCacheKey(kind string, lat, lon float64) string {
	return fmt.Sprintf("weather:%s:%.2f,%.2f", kind, lat, lon)
}
