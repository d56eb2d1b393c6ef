package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type memoryCycleStorage struct {
	cycles []models.Cycle
}

func (storage *memoryCycleStorage) LoadCycles() ([]models.Cycle, error) {
	return storage.cycles, nil
}

func (storage *memoryCycleStorage) SaveCycles(cycles []models.Cycle) error {
	storage.cycles = append([]models.Cycle(nil), cycles...)
	return nil
}

type memoryReminderStorage struct {
	reminders []models.Reminder
}

func (storage *memoryReminderStorage) LoadReminders() ([]models.Reminder, error) {
	return storage.reminders, nil
}

func (storage *memoryReminderStorage) SaveReminders(reminders []models.Reminder) error {
	storage.reminders = append([]models.Reminder(nil), reminders...)
	return nil
}

type memoryPreferencesStorage struct {
	preferences models.Preferences
	exists      bool
}

func (storage *memoryPreferencesStorage) LoadPreferences() (models.Preferences, bool, error) {
	return storage.preferences, storage.exists, nil
}

func (storage *memoryPreferencesStorage) SavePreferences(preferences models.Preferences) error {
	storage.preferences = preferences
	storage.exists = true
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cycles, err := services.NewCycleRepository(&memoryCycleStorage{}, log)
	if err != nil {
		t.Fatalf("cycle repository: %v", err)
	}
	reminders, err := services.NewReminderRepository(&memoryReminderStorage{}, log)
	if err != nil {
		t.Fatalf("reminder repository: %v", err)
	}
	preferences, err := services.NewPreferencesService(&memoryPreferencesStorage{}, log)
	if err != nil {
		t.Fatalf("preferences service: %v", err)
	}

	stats := services.NewStatsService(cycles, preferences)
	predictions := services.NewPredictionService(cycles, stats)
	status := services.NewStatusService(cycles, stats, predictions)
	notifications := services.NewNotificationService(cycles, stats)

	handler := NewHandler(cycles, stats, predictions, status, notifications, reminders, preferences, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSONMap(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func decodeJSONList(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	decoded := []map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func cycleBody(start string, end string) map[string]any {
	days := []map[string]any{}
	startDay, _ := models.ParseDate(start)
	endDay, _ := models.ParseDate(end)
	for day := startDay; !day.After(endDay); day = day.AddDays(1) {
		days = append(days, map[string]any{"date": day.String(), "flow": models.FlowMedium})
	}
	return map[string]any{"start_date": start, "end_date": end, "days": days}
}
