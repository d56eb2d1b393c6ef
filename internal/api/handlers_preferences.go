package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	return c.JSON(handler.preferences.Current())
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	payload := preferencesPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	preferences, err := handler.preferences.Update(payload.AverageCycleLength, payload.AveragePeriodLength, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(preferences)
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	preferences, err := handler.preferences.CompleteOnboarding(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(preferences)
}
