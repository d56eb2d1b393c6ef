package api

import (
	"errors"
	"strings"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

type cycleDayPayload struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
	Mood     string   `json:"mood"`
	Notes    []string `json:"notes"`
}

type cyclePayload struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []cycleDayPayload `json:"days"`
}

type notePayload struct {
	Note string `json:"note"`
}

type reminderPayload struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type preferencesPayload struct {
	AverageCycleLength  int `json:"average_cycle_length"`
	AveragePeriodLength int `json:"average_period_length"`
}

var (
	errInvalidStartDate = errors.New("invalid start_date, expected yyyy-MM-dd")
	errInvalidEndDate   = errors.New("invalid end_date, expected yyyy-MM-dd")
	errInvalidDayDate   = errors.New("invalid day date, expected yyyy-MM-dd")
	errInvalidFlow      = errors.New("invalid flow value")
	errInvalidMood      = errors.New("invalid mood value")
	errEndBeforeStart   = errors.New("end_date must not be before start_date")
)

func parseCyclePayload(payload cyclePayload) (models.Date, models.Date, []models.CycleDay, error) {
	startDate, err := models.ParseDate(payload.StartDate)
	if err != nil {
		return models.Date{}, models.Date{}, nil, errInvalidStartDate
	}
	endDate, err := models.ParseDate(payload.EndDate)
	if err != nil {
		return models.Date{}, models.Date{}, nil, errInvalidEndDate
	}
	if endDate.Before(startDate) {
		return models.Date{}, models.Date{}, nil, errEndBeforeStart
	}

	days := make([]models.CycleDay, 0, len(payload.Days))
	for _, rawDay := range payload.Days {
		day, err := parseCycleDayPayload(rawDay)
		if err != nil {
			return models.Date{}, models.Date{}, nil, err
		}
		days = append(days, day)
	}
	return startDate, endDate, days, nil
}

func parseCycleDayPayload(payload cycleDayPayload) (models.CycleDay, error) {
	date, err := models.ParseDate(payload.Date)
	if err != nil {
		return models.CycleDay{}, errInvalidDayDate
	}

	flow := strings.TrimSpace(payload.Flow)
	if flow == "" {
		flow = models.FlowNone
	}
	if !models.IsValidFlow(flow) {
		return models.CycleDay{}, errInvalidFlow
	}

	mood := strings.TrimSpace(payload.Mood)
	if !models.IsValidMood(mood) {
		return models.CycleDay{}, errInvalidMood
	}

	return models.CycleDay{
		Date:     date,
		Flow:     flow,
		Symptoms: payload.Symptoms,
		Mood:     mood,
		Notes:    payload.Notes,
	}, nil
}
