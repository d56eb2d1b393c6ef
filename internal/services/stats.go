package services

import "github.com/MercySpectures/shetrack-simple-cycles/internal/models"

// Outlier thresholds guard the averages against data-entry errors and long
// tracking gaps.
const (
	maxCycleGapDays     = 60
	maxPeriodLengthDays = 15
)

type StatsCycleSource interface {
	Cycles() []models.Cycle
}

type StatsPreferencesSource interface {
	Current() models.Preferences
}

// StatsService derives average lengths from the recorded history. Explicit
// preference overrides always win over computed values.
type StatsService struct {
	cycles      StatsCycleSource
	preferences StatsPreferencesSource
}

func NewStatsService(cycles StatsCycleSource, preferences StatsPreferencesSource) *StatsService {
	return &StatsService{cycles: cycles, preferences: preferences}
}

func (service *StatsService) AverageCycleLength() int {
	if override := service.preferences.Current().AverageCycleLength; override > 0 {
		return override
	}
	return AverageCycleLengthOf(service.cycles.Cycles())
}

func (service *StatsService) AveragePeriodLength() int {
	if override := service.preferences.Current().AveragePeriodLength; override > 0 {
		return override
	}
	return AveragePeriodLengthOf(service.cycles.Cycles())
}

// AverageCycleLengthOf averages the start-to-start gaps between consecutive
// cycles, skipping gaps outside (0, 60) days. Fewer than two cycles, or all
// gaps filtered, falls back to the 28-day default.
func AverageCycleLengthOf(cycles []models.Cycle) int {
	if len(cycles) < 2 {
		return models.DefaultCycleLength
	}

	total := 0
	count := 0
	for index := 1; index < len(cycles); index++ {
		gap := cycles[index].StartDate.DaysSince(cycles[index-1].StartDate)
		if gap > 0 && gap < maxCycleGapDays {
			total += gap
			count++
		}
	}
	if count == 0 {
		return models.DefaultCycleLength
	}
	return roundHalfUp(total, count)
}

// AveragePeriodLengthOf averages the inclusive period lengths, skipping
// lengths outside (0, 15) days. The divisor is deliberately the total cycle
// count, not the filtered count; see the denominator note in DESIGN.md
// before touching it.
func AveragePeriodLengthOf(cycles []models.Cycle) int {
	if len(cycles) == 0 {
		return models.DefaultPeriodLength
	}

	total := 0
	for _, cycle := range cycles {
		length := cycle.PeriodLength()
		if length > 0 && length < maxPeriodLengthDays {
			total += length
		}
	}

	average := roundHalfUp(total, len(cycles))
	if average <= 0 {
		return models.DefaultPeriodLength
	}
	return average
}

func roundHalfUp(total int, count int) int {
	return int(float64(total)/float64(count) + 0.5)
}
