package services

import (
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

// CycleDayInfo describes where today falls in the current cycle. CurrentDay
// is nil when no cycles are recorded or the last recorded start is still in
// the future. IsOvulationDay and IsFertileDay are mutually exclusive:
// ovulation wins.
type CycleDayInfo struct {
	CurrentDay     *int `json:"current_day"`
	TotalDays      int  `json:"total_days"`
	IsPeriodDay    bool `json:"is_period_day"`
	IsFertileDay   bool `json:"is_fertile_day"`
	IsOvulationDay bool `json:"is_ovulation_day"`
}

type StatusCycleSource interface {
	LastCycle() (models.Cycle, bool)
}

type StatusPredictionSource interface {
	CurrentFertilityWindow() (FertilityWindow, bool)
}

type StatusStats interface {
	AverageCycleLength() int
}

// StatusService resolves the current cycle-day on every call; it holds no
// state of its own.
type StatusService struct {
	cycles      StatusCycleSource
	stats       StatusStats
	predictions StatusPredictionSource
}

func NewStatusService(cycles StatusCycleSource, stats StatusStats, predictions StatusPredictionSource) *StatusService {
	return &StatusService{cycles: cycles, stats: stats, predictions: predictions}
}

func (service *StatusService) CurrentCycleDayInfo(now time.Time) CycleDayInfo {
	info := CycleDayInfo{TotalDays: service.stats.AverageCycleLength()}

	last, ok := service.cycles.LastCycle()
	if !ok {
		return info
	}

	today := models.DateOf(now)
	daysSinceStart := today.DaysSince(last.StartDate)
	if daysSinceStart >= 0 {
		currentDay := daysSinceStart + 1
		info.CurrentDay = &currentDay
	}

	for _, day := range last.Days {
		if day.Date.Equal(today) {
			info.IsPeriodDay = true
			break
		}
	}

	window, ok := service.predictions.CurrentFertilityWindow()
	if !ok {
		return info
	}

	switch {
	case today.Equal(window.OvulationDate):
		info.IsOvulationDay = true
	case !today.Before(window.FertileStart) && !today.After(window.FertileEnd):
		info.IsFertileDay = true
	}

	return info
}
