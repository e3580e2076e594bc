package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/dto"
	"github.com/modboard/backend/internal/models"
	"github.com/modboard/backend/internal/services"
	"github.com/modboard/backend/internal/store"
)

type FlagHandler struct {
	flagService *services.FlagService
}

func NewFlagHandler(flagService *services.FlagService) *FlagHandler {
	return &FlagHandler{flagService: flagService}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *FlagHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.flagService.Create(models.ContentType(req.ContentType), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to create flag", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error creating flagged item",
		})
	}

	slog.Info("flag created", "flag_id", item.ID, "priority", item.Priority)
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *FlagHandler) List(c *fiber.Ctx) error {
	items, err := h.flagService.List()
	if err != nil {
		slog.Error("failed to list flags", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching flagged items",
		})
	}
	return c.JSON(items)
}

func (h *FlagHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid flag ID",
		})
	}

	item, err := h.flagService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Flagged item not found",
			})
		}
		slog.Error("failed to fetch flag", "flag_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching flagged item",
		})
	}
	return c.JSON(item)
}

func (h *FlagHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid flag ID",
		})
	}

	var req dto.UpdateFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.flagService.UpdateStatus(id, models.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, store.ErrFlagNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Flagged item not found",
			})
		default:
			slog.Error("failed to update flag", "flag_id", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Error updating flagged item",
			})
		}
	}

	slog.Info("flag updated", "flag_id", item.ID, "status", item.Status)
	return c.JSON(item)
}

func (h *FlagHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid flag ID",
		})
	}

	if err := h.flagService.Delete(id); err != nil {
		if errors.Is(err, store.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Flagged item not found",
			})
		}
		slog.Error("failed to delete flag", "flag_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error deleting flagged item",
		})
	}

	slog.Info("flag deleted", "flag_id", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FlagHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.flagService.Stats()
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching statistics",
		})
	}
	return c.JSON(stats)
}
