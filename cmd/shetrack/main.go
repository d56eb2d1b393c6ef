package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/api"
	"github.com/MercySpectures/shetrack-simple-cycles/internal/db"
	"github.com/MercySpectures/shetrack-simple-cycles/internal/scheduler"
	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	location := mustLoadLocation(getEnv("TZ", "UTC"), log)
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "shetrack.db"))
	port := getEnv("PORT", "8080")
	reminderHour := getEnvInt("REMINDER_HOUR", 9, log)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}
	stores := db.NewStores(database)

	cycles, err := services.NewCycleRepository(stores.Cycles, log)
	if err != nil {
		log.WithError(err).Fatal("cycle repository init failed")
	}
	reminders, err := services.NewReminderRepository(stores.Reminders, log)
	if err != nil {
		log.WithError(err).Fatal("reminder repository init failed")
	}
	preferences, err := services.NewPreferencesService(stores.Preferences, log)
	if err != nil {
		log.WithError(err).Fatal("preferences init failed")
	}

	stats := services.NewStatsService(cycles, preferences)
	predictions := services.NewPredictionService(cycles, stats)
	status := services.NewStatusService(cycles, stats, predictions)
	notifications := services.NewNotificationService(cycles, stats)

	handler := api.NewHandler(cycles, stats, predictions, status, notifications, reminders, preferences, location)

	app := fiber.New(fiber.Config{
		AppName:               "SheTrack",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	reminderScheduler := scheduler.New(reminders, notifications, scheduler.NewLogNotifier(log), location, log)
	if err := reminderScheduler.Start(reminderHour); err != nil {
		log.WithError(err).Fatal("scheduler init failed")
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		reminderScheduler.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.Infof("SheTrack listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func mustLoadLocation(name string, log *logrus.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int, log *logrus.Logger) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("invalid %s %q, falling back to %d", key, raw, fallback)
		return fallback
	}
	return value
}
