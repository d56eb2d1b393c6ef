package services

// fertileWindowDays is the chart-facing fertile segment: five lead days plus
// ovulation day.
const fertileWindowDays = fertileLeadDays + 1

// PhaseBreakdown splits an average cycle into chart segments.
type PhaseBreakdown struct {
	PeriodDays    int `json:"period_days"`
	FertileDays   int `json:"fertile_days"`
	RemainingDays int `json:"remaining_days"`
}

func CyclePhaseBreakdown(cycleLength int, periodLength int) PhaseBreakdown {
	remaining := cycleLength - periodLength - fertileWindowDays
	if remaining < 0 {
		remaining = 0
	}
	return PhaseBreakdown{
		PeriodDays:    periodLength,
		FertileDays:   fertileWindowDays,
		RemainingDays: remaining,
	}
}
