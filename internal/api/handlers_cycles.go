package api

import (
	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	return c.JSON(handler.cycles.Cycles())
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	payload := cyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	startDate, endDate, days, err := parseCyclePayload(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	cycle, err := handler.cycles.AddCycle(startDate, endDate, days)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	payload := cyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	startDate, endDate, days, err := parseCyclePayload(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	cycle, err := handler.cycles.UpdateCycle(models.Cycle{
		ID:        c.Params("id"),
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(cycle)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	if err := handler.cycles.DeleteCycle(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddNoteToDay(c *fiber.Ctx) error {
	date, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected yyyy-MM-dd")
	}

	payload := notePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	matched, err := handler.cycles.AddNoteToDay(date, payload.Note)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"matched": matched})
}
