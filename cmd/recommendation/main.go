package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/recommendation-service/docs"
	"github.com/tair/recommendation-service/internal/recommendation"
	httpDelivery "github.com/tair/recommendation-service/internal/recommendation/delivery/http"
	"github.com/tair/recommendation-service/internal/recommendation/repository"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/command"
	"github.com/tair/recommendation-service/kafka"
	"github.com/tair/recommendation-service/pkg/database"
	"github.com/tair/recommendation-service/pkg/logger"
	"github.com/tair/recommendation-service/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "recommendation-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	testingMode := getEnv("TESTING_MODE", "false") == "true"

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Bool("testing_mode", testingMode).
		Msg("Starting recommendation service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "recommendationdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database with GORM
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	repo := repository.NewGormRecommendationRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handler with Wire DI
	handler, err := recommendation.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Optional Kafka publisher/consumer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		brokerList := strings.Split(brokers, ",")

		publisher, err := kafka.NewPublisher(brokerList)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()
		handler.SetPublisher(publisher)

		consumer, err := kafka.NewConsumer(brokerList, serviceName, []string{kafka.TopicProductDeleted})
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		purgeHandler := command.NewPurgeProductHandler(repo)
		consumer.RegisterHandler(kafka.EventTypeProductDeleted, func(ctx context.Context, event kafka.ProductDeletedEvent) error {
			deleted, err := purgeHandler.Handle(command.PurgeProductCommand{ProductID: event.ProductID})
			if err != nil {
				return err
			}
			logger.Info(ctx).
				Int64("product_id", event.ProductID).
				Int64("deleted", deleted).
				Msg("Purged recommendations for deleted product")
			return nil
		})

		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
		}
	}

	// Optional Redis response cache
	var redisClient *redis.Client
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unavailable, response cache disabled")
			redisClient = nil
		}
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(handler, sqlDB, redisClient, httpPort, testingMode)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.RecommendationHandler, db *sql.DB, redisClient *redis.Client, port string, testingMode bool) {
	// Setup router
	router := mux.NewRouter()

	// Logging and tracing middlewares
	httpDelivery.RegisterMiddlewares(router, httpDelivery.DefaultMiddlewareConfig())

	// Response cache for GET routes (no-op when Redis is absent)
	router.Use(httpDelivery.CacheMiddleware(redisClient, httpDelivery.DefaultCacheConfig()))

	// Register routes
	handler.RegisterRoutes(router, testingMode)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Bool("clear_route_enabled", testingMode).
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
