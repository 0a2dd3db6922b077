package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unibus/api/routes"
	"unibus/internal/bookings"
	"unibus/internal/shared/config"
	"unibus/internal/shared/database"
	"unibus/pkg/logger"
	"unibus/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			AdminRequests:   cfg.RateLimit.AdminRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Initialize mail transport for booking confirmations
	emailSender, err := bookings.NewSMTPEmailSender(cfg.Email)
	if err != nil {
		appLogger.Error("Failed to initialize mail transport", slog.Any("error", err))
		appLogger.Info("Continuing without mail transport - booking confirmations will fail")
		emailSender = nil
	}

	var sender bookings.EmailSender
	if emailSender != nil {
		sender = emailSender
	}

	// Initialize confirmation pipeline: Kafka when enabled, direct SMTP otherwise
	var producer bookings.ConfirmationProducer
	if cfg.Kafka.Enabled && sender != nil {
		kafkaProducer, err := bookings.NewKafkaConfirmationProducer(cfg.Kafka)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
			appLogger.Info("Continuing without Kafka - confirmations will be sent synchronously")
		} else {
			producer = kafkaProducer
			defer kafkaProducer.Close()

			consumerCtx, consumerCancel := context.WithCancel(context.Background())
			defer consumerCancel()

			consumer, err := bookings.NewConfirmationConsumer(cfg.Kafka, sender)
			if err != nil {
				appLogger.Error("Failed to initialize confirmation consumer", slog.Any("error", err))
			} else {
				consumer.Start(consumerCtx)
				appLogger.Info("Confirmation consumer started",
					slog.Int("workers", cfg.Kafka.ConsumerWorkers),
					slog.String("topic", cfg.Kafka.ConfirmationTopic),
				)

				defer func() {
					appLogger.Info("Stopping confirmation consumer...")
					if err := consumer.Stop(); err != nil {
						appLogger.Error("Error stopping confirmation consumer", slog.Any("error", err))
					}
				}()
			}
		}
	} else {
		appLogger.Info("Kafka disabled - booking confirmations sent synchronously")
	}

	bookingService := bookings.NewService(producer, sender)

	// Setup router with rate limiter
	router := setupRouter(cfg, db, rateLimiter, bookingService)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", fmt.Sprintf("http://localhost:%s%s", cfg.Port, cfg.GetAPIBasePath())),
			slog.Bool("redis_cache", (db.Redis != nil)),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.RateLimiter, bookingService bookings.Service) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, db, bookingService)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
