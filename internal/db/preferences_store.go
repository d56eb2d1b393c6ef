package db

import (
	"errors"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"gorm.io/gorm"
)

// preferencesRowID pins the preferences table to a single row.
const preferencesRowID = 1

type PreferencesStore struct {
	database *gorm.DB
}

func NewPreferencesStore(database *gorm.DB) *PreferencesStore {
	return &PreferencesStore{database: database}
}

func (store *PreferencesStore) LoadPreferences() (models.Preferences, bool, error) {
	preferences := models.Preferences{}
	err := store.database.First(&preferences, preferencesRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Preferences{}, false, nil
	}
	if err != nil {
		return models.Preferences{}, false, err
	}
	return preferences, true, nil
}

func (store *PreferencesStore) SavePreferences(preferences models.Preferences) error {
	preferences.ID = preferencesRowID
	return store.database.Save(&preferences).Error
}
