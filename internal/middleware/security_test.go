package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadersApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(SecurityHeaders(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestSecurityHeaders(t *testing.T) {
	app := newHeadersApp(&config.Config{Environment: "development"})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", resp.Header.Get("X-XSS-Protection"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", resp.Header.Get("Strict-Transport-Security"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
	assert.Empty(t, resp.Header.Get("Content-Security-Policy"), "no CSP outside production")
}

func TestSecurityHeadersProductionCSP(t *testing.T) {
	app := newHeadersApp(&config.Config{Environment: "production"})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'")
}
