package db

import "gorm.io/gorm"

type Stores struct {
	Cycles      *CycleStore
	Reminders   *ReminderStore
	Preferences *PreferencesStore
}

func NewStores(database *gorm.DB) *Stores {
	return &Stores{
		Cycles:      NewCycleStore(database),
		Reminders:   NewReminderStore(database),
		Preferences: NewPreferencesStore(database),
	}
}
