package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_preparedness/internal/config"
	v1 "github.com/shenikar/disaster_preparedness/internal/handler/http/v1"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/shenikar/disaster_preparedness/internal/provider/openweather"
	"github.com/shenikar/disaster_preparedness/internal/provider/twilio"
	"github.com/shenikar/disaster_preparedness/internal/repository"
	"github.com/shenikar/disaster_preparedness/internal/service"
	"github.com/shenikar/disaster_preparedness/internal/webhook"
	"github.com/shenikar/disaster_preparedness/migrations"
	"github.com/shenikar/disaster_preparedness/pkg/logger"
	"github.com/shenikar/disaster_preparedness/pkg/postgres"
	redisclient "github.com/shenikar/disaster_preparedness/pkg/redis"

	_ "github.com/shenikar/disaster_preparedness/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Preparedness API
// @version 1.0
// @description Backend for the municipal disaster-preparedness app: incidents, go-bag checklist, evacuation centers, family safety status and map layers.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics := observability.NewMetrics()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := migrations.Up(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// События семьи уходят в очередь, только если есть куда их доставлять
	var publisher webhook.WebhookPublisher = webhook.NopPublisher{}
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhook.NewWebhookWorker(redisClient, log, cfg, metrics).Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, family events will not be delivered")
	}

	// Внешние провайдеры; без ключей соответствующие эндпоинты отвечают 501
	var smsSender service.SMSSender
	if cfg.SMSConfigured() {
		smsSender = twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.UpstreamTimeout, metrics, log)
	} else {
		log.Warn("Twilio credentials are not set, SMS sending is disabled")
	}
	var weatherProvider service.WeatherProvider
	if cfg.OpenWeatherAPIKey != "" {
		weatherProvider = openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.UpstreamTimeout, metrics)
	} else {
		log.Warn("OPENWEATHER_API_KEY is not set, weather endpoints are disabled")
	}

	clock := clockwork.NewRealClock()

	// Инициализация сервисов
	services := v1.Services{
		Incidents:  service.NewIncidentService(repository.NewIncidentRepository(dbpool), log, clock),
		GoBag:      service.NewGoBagService(repository.NewGoBagRepository(dbpool), log),
		Evacuation: service.NewEvacuationService(repository.NewEvacuationRepository(dbpool), log),
		Family:     service.NewFamilyService(repository.NewFamilyRepository(dbpool), log, clock, publisher),
		Maps:       service.NewMapService(repository.NewMapRepository(dbpool), log),
		SMS:        service.NewSMSService(smsSender, log),
		Weather: service.NewWeatherService(weatherProvider, repository.NewWeatherCache(redisClient),
			cfg.WeatherCacheTTL, metrics, log),
	}

	// Заполнение справочных данных
	if cfg.SeedDefaults {
		seeder := service.NewSeeder(repository.NewSeedRepository(dbpool), metrics, log)
		if err := seeder.Initialize(ctx); err != nil {
			log.Fatalf("Failed to seed default data: %v", err)
		}
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestIDMiddleware(), v1.AccessLogMiddleware(log), v1.MetricsMiddleware(metrics))
	handler.RegisterRoutes(router.Group("/api"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
