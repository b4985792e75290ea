package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/order-batch-service/internal/events"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/handler"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/repository"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/service"
	"github.com/cloud-wave-best-zizon/order-batch-service/pkg/config"
	"github.com/cloud-wave-best-zizon/order-batch-service/pkg/logging"
	"github.com/cloud-wave-best-zizon/order-batch-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("kafka_brokers", cfg.KafkaBrokers),
		zap.Bool("archive_enabled", cfg.ArchiveEnabled),
		zap.Bool("events_enabled", cfg.EventsEnabled))

	var archive service.OrderArchive
	if cfg.ArchiveEnabled {
		dynamoClient, err := repository.NewDynamoDBClient(cfg)
		if err != nil {
			logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
		}
		archive = repository.NewOrderRepository(dynamoClient, cfg.OrderTableName)
	}

	var (
		orderEvents service.OrderEventPublisher = events.NopPublisher{}
		deliveries  service.DeliveryPublisher   = events.NopPublisher{}
		healthCheck                             = func() error { return nil }
	)
	if cfg.EventsEnabled {
		kafkaProducer, err := events.NewKafkaProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic, logger)
		if err != nil {
			logger.Fatal("Failed to create Kafka producer", zap.Error(err))
		}
		defer kafkaProducer.Close()

		deliveryProducer := events.NewDeliveryProducer(cfg.KafkaBrokers, cfg.DeliveryEventsTopic, logger)
		defer deliveryProducer.Close()

		orderEvents = kafkaProducer
		deliveries = deliveryProducer
		healthCheck = kafkaProducer.HealthCheck
	}

	batchService := service.NewBatchService(archive, orderEvents, deliveries, logger)
	batchHandler := handler.NewBatchHandler(batchService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	v1 := router.Group("/api/v1")
	batchHandler.RegisterRoutes(v1)
	v1.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"service": "order-batch-service",
			"port":    cfg.Port,
		}
		if err := healthCheck(); err != nil {
			status["kafka"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["kafka"] = "healthy"
		c.JSON(http.StatusOK, status)
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
