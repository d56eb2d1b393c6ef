package models

import "time"

const (
	FlowNone     = "none"
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 40
	MinPeriodLength = 1
	MaxPeriodLength = 10
)

// CycleDay is one observed day inside a recorded period.
type CycleDay struct {
	Date     Date     `json:"date"`
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// Cycle is one observed menstrual period. CycleLength is derived from the
// immediate predecessor in start-date order and is zero for the earliest
// recorded cycle.
type Cycle struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	StartDate   Date       `gorm:"type:date;not null;index" json:"start_date"`
	EndDate     Date       `gorm:"type:date;not null" json:"end_date"`
	Days        []CycleDay `gorm:"serializer:json" json:"days"`
	CycleLength int        `gorm:"not null;default:0" json:"cycle_length,omitempty"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

// PeriodLength is the inclusive day count from start to end.
func (cycle Cycle) PeriodLength() int {
	return cycle.EndDate.DaysSince(cycle.StartDate) + 1
}

func IsValidFlow(flow string) bool {
	switch flow {
	case FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func IsValidMood(mood string) bool {
	switch mood {
	case "", MoodHappy, MoodNeutral, MoodSad:
		return true
	default:
		return false
	}
}
