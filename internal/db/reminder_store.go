package db

import (
	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"gorm.io/gorm"
)

type ReminderStore struct {
	database *gorm.DB
}

func NewReminderStore(database *gorm.DB) *ReminderStore {
	return &ReminderStore{database: database}
}

func (store *ReminderStore) LoadReminders() ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := store.database.Order("date ASC, id ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (store *ReminderStore) SaveReminders(reminders []models.Reminder) error {
	return store.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		if len(reminders) == 0 {
			return nil
		}
		return tx.Create(&reminders).Error
	})
}
