package db

import (
	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"gorm.io/gorm"
)

// CycleStore is the durable side of the cycles collection. The in-memory
// repository loads the whole collection once at startup and writes the whole
// collection back after every mutation.
type CycleStore struct {
	database *gorm.DB
}

func NewCycleStore(database *gorm.DB) *CycleStore {
	return &CycleStore{database: database}
}

func (store *CycleStore) LoadCycles() ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := store.database.Order("start_date ASC, id ASC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (store *CycleStore) SaveCycles(cycles []models.Cycle) error {
	return store.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Cycle{}).Error; err != nil {
			return err
		}
		if len(cycles) == 0 {
			return nil
		}
		return tx.Create(&cycles).Error
	})
}
