package api

import (
	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	return c.JSON(handler.reminders.Reminders())
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	payload := reminderPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date, err := models.ParseDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected yyyy-MM-dd")
	}

	reminder, err := handler.reminders.AddReminder(date, payload.Title, payload.Description)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	payload := reminderPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date, err := models.ParseDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected yyyy-MM-dd")
	}

	reminder, err := handler.reminders.UpdateReminder(models.Reminder{
		ID:          c.Params("id"),
		Date:        date,
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   payload.Completed,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reminder)
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	if err := handler.reminders.DeleteReminder(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
