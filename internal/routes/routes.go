package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/modboard/backend/internal/config"
	"github.com/modboard/backend/internal/handlers"
	"github.com/modboard/backend/internal/metrics"
	"github.com/modboard/backend/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	flagHandler *handlers.FlagHandler,
	healthHandler *handlers.HealthHandler,
	gatherer prometheus.Gatherer,
) {
	// Probes and scrape endpoint live outside /api: no auth, no rate limit.
	app.Get("/health", healthHandler.Check)
	app.Get("/ready", healthHandler.Ready)
	if cfg.PrometheusEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(gatherer)))
	}

	api := app.Group("/api")

	if cfg.RateLimitEnabled {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	protected := middleware.Protected(cfg)

	api.Post("/flags", protected, flagHandler.Create)
	api.Get("/flags", protected, flagHandler.List)
	api.Get("/flags/:id", protected, flagHandler.Get)
	api.Patch("/flags/:id", protected, flagHandler.UpdateStatus)
	api.Delete("/flags/:id", protected, flagHandler.Delete)
	api.Get("/stats", protected, flagHandler.Stats)

	// Dashboard assets, when this process serves them.
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
