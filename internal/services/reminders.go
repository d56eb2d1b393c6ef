package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrReminderTitleRequired = errors.New("reminder title is required")
)

type ReminderStorage interface {
	LoadReminders() ([]models.Reminder, error)
	SaveReminders(reminders []models.Reminder) error
}

// ReminderRepository is a storage pass-through with one derived behavior:
// listings order incomplete reminders first, then by date ascending.
type ReminderRepository struct {
	mu        sync.Mutex
	storage   ReminderStorage
	reminders []models.Reminder
	log       *logrus.Logger
}

func NewReminderRepository(storage ReminderStorage, log *logrus.Logger) (*ReminderRepository, error) {
	reminders, err := storage.LoadReminders()
	if err != nil {
		return nil, fmt.Errorf("load reminders: %w", err)
	}
	return &ReminderRepository{storage: storage, reminders: reminders, log: log}, nil
}

func (repo *ReminderRepository) AddReminder(date models.Date, title string, description string) (models.Reminder, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return models.Reminder{}, ErrReminderTitleRequired
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	reminder := models.Reminder{
		ID:          uuid.NewString(),
		Date:        date,
		Title:       trimmedTitle,
		Description: strings.TrimSpace(description),
	}
	repo.reminders = append(repo.reminders, reminder)
	return reminder, repo.persist()
}

func (repo *ReminderRepository) UpdateReminder(reminder models.Reminder) (models.Reminder, error) {
	if strings.TrimSpace(reminder.Title) == "" {
		return models.Reminder{}, ErrReminderTitleRequired
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for index := range repo.reminders {
		if repo.reminders[index].ID == reminder.ID {
			repo.reminders[index] = reminder
			return reminder, repo.persist()
		}
	}
	return models.Reminder{}, ErrReminderNotFound
}

func (repo *ReminderRepository) DeleteReminder(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	remaining := make([]models.Reminder, 0, len(repo.reminders))
	for _, reminder := range repo.reminders {
		if reminder.ID != id {
			remaining = append(remaining, reminder)
		}
	}
	if len(remaining) == len(repo.reminders) {
		return ErrReminderNotFound
	}

	repo.reminders = remaining
	return repo.persist()
}

// Reminders returns a sorted copy: incomplete first, then by date, ties kept
// in insertion order.
func (repo *ReminderRepository) Reminders() []models.Reminder {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	reminders := make([]models.Reminder, len(repo.reminders))
	copy(reminders, repo.reminders)

	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].Completed != reminders[j].Completed {
			return !reminders[i].Completed
		}
		return reminders[i].Date.Before(reminders[j].Date)
	})
	return reminders
}

// DueReminders returns the incomplete reminders dated exactly today.
func (repo *ReminderRepository) DueReminders(today models.Date) []models.Reminder {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	due := make([]models.Reminder, 0)
	for _, reminder := range repo.reminders {
		if !reminder.Completed && reminder.Date.Equal(today) {
			due = append(due, reminder)
		}
	}
	return due
}

func (repo *ReminderRepository) persist() error {
	if err := repo.storage.SaveReminders(repo.reminders); err != nil {
		if repo.log != nil {
			repo.log.WithError(err).Warn("reminder changes were not saved")
		}
		return fmt.Errorf("reminder changes not saved: %w", err)
	}
	return nil
}
