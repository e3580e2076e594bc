package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/config"
	"github.com/modboard/backend/internal/dto"
)

// Protected returns bearer-token auth for the API surface. With auth
// disabled (development) it is a pass-through, mirroring how the dashboard
// runs without an identity provider locally. A matching X-Admin-Token header
// bypasses JWT verification for operator tooling.
func Protected(cfg *config.Config) fiber.Handler {
	if !cfg.AuthEnabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}
		return jwtHandler(c)
	}
}
