package services

import (
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

const (
	lutealPhaseDays = 14
	fertileLeadDays = 5
)

// Prediction is a forecast period. Never persisted, recomputed on demand.
type Prediction struct {
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
}

// FertilityWindow is the fertile span around an estimated ovulation day.
type FertilityWindow struct {
	OvulationDate models.Date `json:"ovulation_date"`
	FertileStart  models.Date `json:"fertile_start"`
	FertileEnd    models.Date `json:"fertile_end"`
}

type PredictionCycleSource interface {
	LastCycle() (models.Cycle, bool)
}

type PredictionStats interface {
	AverageCycleLength() int
	AveragePeriodLength() int
}

type PredictionService struct {
	cycles PredictionCycleSource
	stats  PredictionStats
}

func NewPredictionService(cycles PredictionCycleSource, stats PredictionStats) *PredictionService {
	return &PredictionService{cycles: cycles, stats: stats}
}

// PredictedPeriods forecasts count future periods from the last recorded
// cycle's start date. Each unit is one average-cycle-length step, not one
// calendar month.
func (service *PredictionService) PredictedPeriods(count int) []Prediction {
	last, ok := service.cycles.LastCycle()
	if !ok {
		return []Prediction{}
	}

	cycleLength := service.stats.AverageCycleLength()
	periodLength := service.stats.AveragePeriodLength()

	predictions := make([]Prediction, 0, count)
	start := last.StartDate
	for i := 0; i < count; i++ {
		start = start.AddDays(cycleLength)
		predictions = append(predictions, Prediction{
			StartDate: start,
			EndDate:   start.AddDays(periodLength - 1),
		})
	}
	return predictions
}

// FertilityWindows returns the current cycle's window, when it has not yet
// closed, followed by count future windows. Ovulation is approximated as the
// next predicted start minus the luteal phase; the fertile span covers the
// five days before ovulation plus ovulation day itself.
func (service *PredictionService) FertilityWindows(count int, now time.Time) []FertilityWindow {
	last, ok := service.cycles.LastCycle()
	if !ok {
		return []FertilityWindow{}
	}

	cycleLength := service.stats.AverageCycleLength()
	today := models.DateOf(now)

	windows := make([]FertilityWindow, 0, count+1)
	nextStart := last.StartDate.AddDays(cycleLength)

	current := fertilityWindowFor(nextStart)
	if current.FertileEnd.After(today) {
		windows = append(windows, current)
	}

	for i := 0; i < count; i++ {
		nextStart = nextStart.AddDays(cycleLength)
		windows = append(windows, fertilityWindowFor(nextStart))
	}
	return windows
}

// CurrentFertilityWindow is the window of the cycle in progress, regardless
// of whether it has already closed.
func (service *PredictionService) CurrentFertilityWindow() (FertilityWindow, bool) {
	last, ok := service.cycles.LastCycle()
	if !ok {
		return FertilityWindow{}, false
	}
	return fertilityWindowFor(last.StartDate.AddDays(service.stats.AverageCycleLength())), true
}

func fertilityWindowFor(predictedStart models.Date) FertilityWindow {
	ovulation := predictedStart.AddDays(-lutealPhaseDays)
	return FertilityWindow{
		OvulationDate: ovulation,
		FertileStart:  ovulation.AddDays(-fertileLeadDays),
		FertileEnd:    ovulation,
	}
}
