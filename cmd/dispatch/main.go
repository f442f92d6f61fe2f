package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/config"
	"github.com/movesure/dispatch/internal/pkg/database"
	"github.com/movesure/dispatch/internal/pkg/health"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/middleware"
	nsqpkg "github.com/movesure/dispatch/internal/pkg/nsq"
	wspkg "github.com/movesure/dispatch/internal/pkg/websocket"
	"github.com/movesure/dispatch/services/dispatch/gateway"
	"github.com/movesure/dispatch/services/dispatch/handler"
	"github.com/movesure/dispatch/services/dispatch/repository"
	"github.com/movesure/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize WebSocket manager for driver sessions
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize repository
	notificationRepo := repository.NewNotificationRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	weatherGW := gateway.NewWeatherGW(configs.Providers.Weather)
	trafficGW := gateway.NewTrafficGW(configs.Providers.Traffic)
	routeGW := gateway.NewRouteGW(configs.Providers.Route)
	dispatchGW := gateway.NewRealtimeGW(wsManager, producer, configs.NSQ.DispatchedTopic)

	// Initialize usecase
	enricher := usecase.NewEnvironmentalEnricher(weatherGW, trafficGW, routeGW, redisClient, configs.Providers)
	dispatchUC := usecase.NewDispatchUC(configs, notificationRepo, dispatchGW, enricher)

	// Initialize handler
	dispatchHandler := handler.NewDispatchHandler(configs, dispatchUC, wsManager)

	// Initialize NSQ consumers
	consumers, err := dispatchHandler.InitNSQConsumers()
	if err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQChecker(producer))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	dispatchHandler.RegisterRoutes(e, apiKeyMiddleware)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	logger.Info("Server started",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	for _, consumer := range consumers {
		consumer.Stop()
	}

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Failed to shut down server gracefully", logger.Err(err))
	}

	logger.Info("Server stopped")
}
