package api

import (
	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	averageCycleLength := handler.stats.AverageCycleLength()
	averagePeriodLength := handler.stats.AveragePeriodLength()

	return c.JSON(fiber.Map{
		"average_cycle_length":  averageCycleLength,
		"average_period_length": averagePeriodLength,
		"cycle_count":           handler.cycles.Count(),
		"phase_breakdown":       services.CyclePhaseBreakdown(averageCycleLength, averagePeriodLength),
	})
}

func (handler *Handler) GetPredictedPeriods(c *fiber.Ctx) error {
	return c.JSON(handler.predictions.PredictedPeriods(queryCount(c, "count")))
}

func (handler *Handler) GetFertilityWindows(c *fiber.Ctx) error {
	return c.JSON(handler.predictions.FertilityWindows(queryCount(c, "count"), handler.now()))
}

func (handler *Handler) GetCurrentCycleDay(c *fiber.Ctx) error {
	return c.JSON(handler.status.CurrentCycleDayInfo(handler.now()))
}

func (handler *Handler) GetNotifications(c *fiber.Ctx) error {
	return c.JSON(handler.notifications.UpcomingNotices(handler.now()))
}
