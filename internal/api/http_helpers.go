package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps engine sentinels onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCycleNotFound),
		errors.Is(err, services.ErrReminderNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidPreferences),
		errors.Is(err, services.ErrReminderTitleRequired):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "operation not saved, retry")
	}
}

// queryCount reads a forecast count query parameter, defaulting to 3 and
// clamping to a sane ceiling.
func queryCount(c *fiber.Ctx, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 3
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 3
	}
	if count > 24 {
		return 24
	}
	return count
}
