package services

import (
	"fmt"
	"time"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

const (
	NoticePeriodStart     = "period-start"
	NoticeOvulation       = "ovulation"
	NoticeFertilityStart  = "fertility-start"
	NoticeFertilityWindow = "fertility-window"
	NoticeReminder        = "reminder"
)

// CycleNotice is a derived upcoming-event notice. Never persisted.
type CycleNotice struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Date    models.Date `json:"date"`
}

type NoticeCycleSource interface {
	LastCycle() (models.Cycle, bool)
}

type NoticeStats interface {
	AverageCycleLength() int
}

// NotificationService computes the notices worth surfacing right now: a
// period expected within five days, ovulation within two days, a fertile
// window opening today or tomorrow, or a fertile window in progress.
type NotificationService struct {
	cycles NoticeCycleSource
	stats  NoticeStats
}

func NewNotificationService(cycles NoticeCycleSource, stats NoticeStats) *NotificationService {
	return &NotificationService{cycles: cycles, stats: stats}
}

func (service *NotificationService) UpcomingNotices(now time.Time) []CycleNotice {
	last, ok := service.cycles.LastCycle()
	if !ok {
		return []CycleNotice{}
	}

	today := models.DateOf(now)
	nextPeriodStart := last.StartDate.AddDays(service.stats.AverageCycleLength())
	notices := make([]CycleNotice, 0, 4)

	if daysUntil := nextPeriodStart.DaysSince(today); daysUntil > 0 && daysUntil <= 5 {
		notices = append(notices, CycleNotice{
			Type:    NoticePeriodStart,
			Message: fmt.Sprintf("Your next period is expected to start in %s.", pluralDays(daysUntil)),
			Date:    nextPeriodStart,
		})
	}

	window := fertilityWindowFor(nextPeriodStart)

	if daysUntil := window.OvulationDate.DaysSince(today); daysUntil >= 0 && daysUntil <= 2 {
		message := fmt.Sprintf("Your estimated ovulation is in %s.", pluralDays(daysUntil))
		if daysUntil == 0 {
			message = "Today is your estimated ovulation day."
		}
		notices = append(notices, CycleNotice{
			Type:    NoticeOvulation,
			Message: message,
			Date:    window.OvulationDate,
		})
	}

	if daysUntil := window.FertileStart.DaysSince(today); daysUntil >= 0 && daysUntil <= 1 {
		message := "Your fertile window begins tomorrow."
		if daysUntil == 0 {
			message = "Your fertile window begins today."
		}
		notices = append(notices, CycleNotice{
			Type:    NoticeFertilityStart,
			Message: message,
			Date:    window.FertileStart,
		})
	}

	if today.After(window.FertileStart) && today.Before(window.FertileEnd) {
		notices = append(notices, CycleNotice{
			Type:    NoticeFertilityWindow,
			Message: "You are currently in your fertile window.",
			Date:    today,
		})
	}

	return notices
}

func pluralDays(count int) string {
	if count == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", count)
}
