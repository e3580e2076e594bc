package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/config"
	"github.com/modboard/backend/internal/database"
	"github.com/modboard/backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// Check is the liveness probe. It deliberately avoids the database so the
// platform can tell "process up" apart from "dependencies up".
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "healthy",
		Service:     "moderation-dashboard",
		Environment: h.cfg.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready is the readiness probe: 200 only when the database answers.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := database.Ping(h.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ReadyResponse{
			Status: "not_ready",
			Error:  err.Error(),
		})
	}
	return c.JSON(dto.ReadyResponse{Status: "ready"})
}
