package models

import "time"

// Preferences holds the user's explicit overrides. A zero length means the
// value is unset and computed statistics apply instead. Stored as a single
// row.
type Preferences struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	AverageCycleLength   int       `gorm:"not null;default:0" json:"average_cycle_length"`
	AveragePeriodLength  int       `gorm:"not null;default:0" json:"average_period_length"`
	LastUpdated          time.Time `json:"last_updated"`
	IsOnboardingComplete bool      `gorm:"not null;default:false" json:"is_onboarding_complete"`
}
