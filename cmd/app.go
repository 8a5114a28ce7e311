package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/sar_dashboard/internal/config"
	v1 "github.com/shenikar/sar_dashboard/internal/handler/http/v1"
	"github.com/shenikar/sar_dashboard/internal/metrics"
	"github.com/shenikar/sar_dashboard/internal/publisher"
	"github.com/shenikar/sar_dashboard/internal/repository"
	"github.com/shenikar/sar_dashboard/internal/service"
	"github.com/shenikar/sar_dashboard/internal/state"
	redisclient "github.com/shenikar/sar_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/sar_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// app - собранный граф зависимостей
type app struct {
	service service.DashboardService
	metrics *metrics.Collector
	closers []func() error
}

// newApp собирает мок-бэкенд, состояние, публикацию событий и сервис.
// withRedis=false всегда использует NoopPublisher.
func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger, reg prometheus.Registerer, withRedis bool) (*app, error) {
	a := &app{}

	// Инициализация мок-бэкенда
	db := repository.NewDatabase(time.Now)
	if cfg.SeedScenario {
		if err := repository.SeedDefault(db, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to seed scenario: %w", err)
		}
		log.WithFields(logrus.Fields{
			"drones":     db.Drones.Len(),
			"k9_units":   db.K9Units.Len(),
			"responders": db.Responders.Len(),
			"incidents":  db.Incidents.Len(),
			"zones":      db.Zones.Len(),
		}).Info("Mock backend seeded")
	}

	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	a.metrics = collector

	// Инициализация издателя событий камеры
	var pub publisher.ViewPublisher = publisher.NoopPublisher{}
	if withRedis && cfg.RedisEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)
		pub = publisher.NewRedisViewPublisher(redisClient, cfg.ViewEventsChannel)
		log.WithField("channel", cfg.ViewEventsChannel).Info("Successfully connected to Redis")
	}

	a.service = service.NewDashboardService(db, state.New(), pub, collector, log)
	a.service.Reload(ctx)
	return a, nil
}

// Close освобождает внешние соединения
func (a *app) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// newRouter настраивает Gin роутер
func newRouter(a *app, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	handler := v1.NewHandler(a.service, log)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(a.metrics.Handler()))

	return router
}
