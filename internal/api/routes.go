package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	cycles := api.Group("/cycles")
	cycles.Get("", handler.GetCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Post("/days/:date/notes", handler.AddNoteToDay)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)

	api.Get("/predictions", handler.GetPredictedPeriods)
	api.Get("/fertility", handler.GetFertilityWindows)
	api.Get("/cycle-day", handler.GetCurrentCycleDay)
	api.Get("/notifications", handler.GetNotifications)

	preferences := api.Group("/preferences")
	preferences.Get("", handler.GetPreferences)
	preferences.Put("", handler.UpdatePreferences)
	preferences.Post("/complete-onboarding", handler.CompleteOnboarding)

	reminders := api.Group("/reminders")
	reminders.Get("", handler.GetReminders)
	reminders.Post("", handler.CreateReminder)
	reminders.Put("/:id", handler.UpdateReminder)
	reminders.Delete("/:id", handler.DeleteReminder)
}
