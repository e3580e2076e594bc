package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/config"
)

// SecurityHeaders sets the standard response hardening headers on every
// response. The CSP is only sent in production where the dashboard is served
// from this process.
func SecurityHeaders(cfg *config.Config) fiber.Handler {
	production := cfg.IsProduction()

	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if production {
			c.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline';")
		}
		return c.Next()
	}
}
