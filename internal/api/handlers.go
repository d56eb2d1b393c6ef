package api

import (
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
)

// Handler bundles the engine services behind the JSON API. It holds no state
// of its own; every response is recomputed from the repositories.
type Handler struct {
	cycles        *services.CycleRepository
	stats         *services.StatsService
	predictions   *services.PredictionService
	status        *services.StatusService
	notifications *services.NotificationService
	reminders     *services.ReminderRepository
	preferences   *services.PreferencesService
	location      *time.Location
}

func NewHandler(
	cycles *services.CycleRepository,
	stats *services.StatsService,
	predictions *services.PredictionService,
	status *services.StatusService,
	notifications *services.NotificationService,
	reminders *services.ReminderRepository,
	preferences *services.PreferencesService,
	location *time.Location,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		cycles:        cycles,
		stats:         stats,
		predictions:   predictions,
		status:        status,
		notifications: notifications,
		reminders:     reminders,
		preferences:   preferences,
		location:      location,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
