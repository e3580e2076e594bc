package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modboard/backend/internal/ai"
	"github.com/modboard/backend/internal/config"
	"github.com/modboard/backend/internal/database"
	"github.com/modboard/backend/internal/dto"
	"github.com/modboard/backend/internal/handlers"
	"github.com/modboard/backend/internal/logging"
	"github.com/modboard/backend/internal/metrics"
	"github.com/modboard/backend/internal/middleware"
	"github.com/modboard/backend/internal/routes"
	"github.com/modboard/backend/internal/services"
	"github.com/modboard/backend/internal/store"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is required when AUTH_ENABLED=true")
		os.Exit(1)
	}

	// Database
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Database log sink (ERROR+ async batch) fanned out alongside stdout
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.Default().Handler(),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// AI capabilities: deterministic rules by default, OpenAI when configured
	var aiService ai.Service = ai.NewRuleService()
	if cfg.AIProvider == "openai" && cfg.OpenAIAPIKey != "" {
		aiService = ai.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AITimeout)
		slog.Info("using OpenAI-backed AI service", "model", cfg.OpenAIModel)
	}

	// Services and handlers
	flagService := services.NewFlagService(store.NewGormStore(db), aiService)
	flagHandler := handlers.NewFlagHandler(flagService)
	healthHandler := handlers.NewHealthHandler(db, cfg)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Prometheus metrics
	collector := metrics.NewCollector(prometheus.DefaultRegisterer, func() float64 {
		sqlDB, err := db.DB()
		if err != nil {
			return 0
		}
		return float64(sqlDB.Stats().OpenConnections)
	})

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders(cfg))
	app.Use(middleware.HTTPMetrics(collector))

	// Routes
	routes.Setup(app, cfg, flagHandler, healthHandler, prometheus.DefaultGatherer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
