package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrInvalidPreferences = errors.New("preference values out of range")

type PreferencesStorage interface {
	LoadPreferences() (models.Preferences, bool, error)
	SavePreferences(preferences models.Preferences) error
}

// PreferencesService owns the user's explicit overrides. A zero length means
// "no override"; set values must sit inside the documented ranges.
type PreferencesService struct {
	mu      sync.Mutex
	storage PreferencesStorage
	current models.Preferences
	log     *logrus.Logger
}

func NewPreferencesService(storage PreferencesStorage, log *logrus.Logger) (*PreferencesService, error) {
	current, _, err := storage.LoadPreferences()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return &PreferencesService{storage: storage, current: current, log: log}, nil
}

func (service *PreferencesService) Current() models.Preferences {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.current
}

// Update replaces the overrides. Zero clears an override; any other value
// must be inside the valid range.
func (service *PreferencesService) Update(cycleLength int, periodLength int, now time.Time) (models.Preferences, error) {
	if cycleLength != 0 && !IsValidCycleLength(cycleLength) {
		return models.Preferences{}, ErrInvalidPreferences
	}
	if periodLength != 0 && !IsValidPeriodLength(periodLength) {
		return models.Preferences{}, ErrInvalidPreferences
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	service.current.AverageCycleLength = cycleLength
	service.current.AveragePeriodLength = periodLength
	service.current.LastUpdated = now
	return service.current, service.persist()
}

func (service *PreferencesService) CompleteOnboarding(now time.Time) (models.Preferences, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.current.IsOnboardingComplete = true
	service.current.LastUpdated = now
	return service.current, service.persist()
}

func (service *PreferencesService) persist() error {
	if err := service.storage.SavePreferences(service.current); err != nil {
		if service.log != nil {
			service.log.WithError(err).Warn("preference changes were not saved")
		}
		return fmt.Errorf("preference changes not saved: %w", err)
	}
	return nil
}

func IsValidCycleLength(days int) bool {
	return days >= models.MinCycleLength && days <= models.MaxCycleLength
}

func IsValidPeriodLength(days int) bool {
	return days >= models.MinPeriodLength && days <= models.MaxPeriodLength
}
