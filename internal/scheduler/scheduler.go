package scheduler

import (
	"fmt"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/MercySpectures/shetrack-simple-cycles/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Notifier receives the notices the daily job decides to surface.
type Notifier interface {
	Notify(notice services.CycleNotice)
}

type ReminderSource interface {
	DueReminders(today models.Date) []models.Reminder
}

type NoticeSource interface {
	UpcomingNotices(now time.Time) []services.CycleNotice
}

// Scheduler runs one cron job per day that collects due reminders and
// upcoming cycle events and hands them to the notifier.
type Scheduler struct {
	cronEngine *cron.Cron
	reminders  ReminderSource
	notices    NoticeSource
	notifier   Notifier
	log        *logrus.Logger
}

func New(reminders ReminderSource, notices NoticeSource, notifier Notifier, location *time.Location, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cronEngine: cron.New(cron.WithLocation(location)),
		reminders:  reminders,
		notices:    notices,
		notifier:   notifier,
		log:        log,
	}
}

func (scheduler *Scheduler) Start(hour int) error {
	spec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := scheduler.cronEngine.AddFunc(spec, func() {
		scheduler.Dispatch(time.Now())
	}); err != nil {
		return fmt.Errorf("add daily reminder job: %w", err)
	}

	scheduler.cronEngine.Start()
	scheduler.log.WithField("cron", spec).Info("reminder scheduler started")
	return nil
}

// Stop waits for any running job before returning.
func (scheduler *Scheduler) Stop() {
	<-scheduler.cronEngine.Stop().Done()
	scheduler.log.Info("reminder scheduler stopped")
}

func (scheduler *Scheduler) Dispatch(now time.Time) {
	today := models.DateOf(now)

	for _, reminder := range scheduler.reminders.DueReminders(today) {
		message := reminder.Title
		if reminder.Description != "" {
			message = fmt.Sprintf("%s: %s", reminder.Title, reminder.Description)
		}
		scheduler.notifier.Notify(services.CycleNotice{
			Type:    services.NoticeReminder,
			Message: message,
			Date:    reminder.Date,
		})
	}

	for _, notice := range scheduler.notices.UpcomingNotices(now) {
		scheduler.notifier.Notify(notice)
	}
}

// LogNotifier writes notices to the application log. It stands in until a
// real delivery channel exists.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (notifier *LogNotifier) Notify(notice services.CycleNotice) {
	notifier.log.WithFields(logrus.Fields{
		"type": notice.Type,
		"date": notice.Date.String(),
	}).Info(notice.Message)
}
