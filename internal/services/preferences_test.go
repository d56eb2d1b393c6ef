package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

type fakePreferencesStorage struct {
	preferences models.Preferences
	exists      bool
	saves       int
}

func (storage *fakePreferencesStorage) LoadPreferences() (models.Preferences, bool, error) {
	return storage.preferences, storage.exists, nil
}

func (storage *fakePreferencesStorage) SavePreferences(preferences models.Preferences) error {
	storage.saves++
	storage.preferences = preferences
	storage.exists = true
	return nil
}

func newTestPreferences(t *testing.T) (*PreferencesService, *fakePreferencesStorage) {
	t.Helper()
	storage := &fakePreferencesStorage{}
	service, err := NewPreferencesService(storage, nil)
	if err != nil {
		t.Fatalf("new preferences service: %v", err)
	}
	return service, storage
}

func TestUpdatePreferencesStampsAndPersists(t *testing.T) {
	service, storage := newTestPreferences(t)

	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	updated, err := service.Update(30, 6, now)
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if updated.AverageCycleLength != 30 || updated.AveragePeriodLength != 6 {
		t.Fatalf("unexpected values: %+v", updated)
	}
	if !updated.LastUpdated.Equal(now) {
		t.Fatalf("expected last updated %v, got %v", now, updated.LastUpdated)
	}
	if storage.saves != 1 {
		t.Fatalf("expected one save, got %d", storage.saves)
	}
}

func TestUpdatePreferencesRejectsOutOfRangeValues(t *testing.T) {
	service, storage := newTestPreferences(t)

	cases := [][2]int{{20, 5}, {41, 5}, {28, -1}, {28, 11}}
	for _, values := range cases {
		if _, err := service.Update(values[0], values[1], time.Now()); !errors.Is(err, ErrInvalidPreferences) {
			t.Fatalf("expected ErrInvalidPreferences for %v, got %v", values, err)
		}
	}
	if storage.saves != 0 {
		t.Fatalf("expected no saves after rejected updates, got %d", storage.saves)
	}
}

func TestUpdatePreferencesZeroClearsOverride(t *testing.T) {
	service, _ := newTestPreferences(t)

	if _, err := service.Update(30, 6, time.Now()); err != nil {
		t.Fatalf("seed preferences: %v", err)
	}
	cleared, err := service.Update(0, 0, time.Now())
	if err != nil {
		t.Fatalf("clear preferences: %v", err)
	}
	if cleared.AverageCycleLength != 0 || cleared.AveragePeriodLength != 0 {
		t.Fatalf("expected cleared overrides, got %+v", cleared)
	}
}

func TestCompleteOnboardingSetsFlag(t *testing.T) {
	service, storage := newTestPreferences(t)

	updated, err := service.CompleteOnboarding(time.Now())
	if err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	if !updated.IsOnboardingComplete {
		t.Fatal("expected onboarding complete flag")
	}
	if !storage.preferences.IsOnboardingComplete {
		t.Fatal("expected flag to be persisted")
	}
}
