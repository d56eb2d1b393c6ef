package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRange  = errors.New("cycle end date is before its start date")
	ErrCycleNotFound = errors.New("cycle not found")
)

// CycleStorage is the durable collaborator behind the in-memory collection.
type CycleStorage interface {
	LoadCycles() ([]models.Cycle, error)
	SaveCycles(cycles []models.Cycle) error
}

// CycleRepository owns the recorded cycles. The collection is kept sorted
// ascending by start date and every cycle's CycleLength is recomputed from
// its immediate predecessor after each mutation. Every mutation is a full
// read-modify-write over the collection, so all access goes through one
// mutex.
type CycleRepository struct {
	mu      sync.Mutex
	storage CycleStorage
	cycles  []models.Cycle
	log     *logrus.Logger
}

// NewCycleRepository loads the persisted collection once. A load failure is
// fatal to the caller: the in-memory model cannot start without its state.
func NewCycleRepository(storage CycleStorage, log *logrus.Logger) (*CycleRepository, error) {
	cycles, err := storage.LoadCycles()
	if err != nil {
		return nil, fmt.Errorf("load cycles: %w", err)
	}

	repo := &CycleRepository{storage: storage, cycles: cycles, log: log}
	repo.normalize()
	return repo, nil
}

func (repo *CycleRepository) AddCycle(startDate models.Date, endDate models.Date, days []models.CycleDay) (models.Cycle, error) {
	if endDate.Before(startDate) {
		return models.Cycle{}, ErrInvalidRange
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	cycle := models.Cycle{
		ID:        uuid.NewString(),
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
	}
	repo.cycles = append(repo.cycles, cycle)
	repo.normalize()

	if err := repo.persist(); err != nil {
		return models.Cycle{}, err
	}
	return repo.findLocked(cycle.ID), nil
}

func (repo *CycleRepository) UpdateCycle(cycle models.Cycle) (models.Cycle, error) {
	if cycle.EndDate.Before(cycle.StartDate) {
		return models.Cycle{}, ErrInvalidRange
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	replaced := false
	for index := range repo.cycles {
		if repo.cycles[index].ID == cycle.ID {
			repo.cycles[index] = cycle
			replaced = true
			break
		}
	}
	if !replaced {
		return models.Cycle{}, ErrCycleNotFound
	}

	repo.normalize()
	if err := repo.persist(); err != nil {
		return models.Cycle{}, err
	}
	return repo.findLocked(cycle.ID), nil
}

func (repo *CycleRepository) DeleteCycle(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	remaining := make([]models.Cycle, 0, len(repo.cycles))
	for _, cycle := range repo.cycles {
		if cycle.ID != id {
			remaining = append(remaining, cycle)
		}
	}
	if len(remaining) == len(repo.cycles) {
		return ErrCycleNotFound
	}

	repo.cycles = remaining
	repo.normalize()
	return repo.persist()
}

// AddNoteToDay appends a note to the day record matching the given date. It
// reports false when no recorded cycle contains that date.
func (repo *CycleRepository) AddNoteToDay(date models.Date, note string) (bool, error) {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return false, nil
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for cycleIndex := range repo.cycles {
		for dayIndex := range repo.cycles[cycleIndex].Days {
			if repo.cycles[cycleIndex].Days[dayIndex].Date.Equal(date) {
				repo.cycles[cycleIndex].Days[dayIndex].Notes = append(repo.cycles[cycleIndex].Days[dayIndex].Notes, trimmed)
				return true, repo.persist()
			}
		}
	}
	return false, nil
}

// Cycles returns a copy of the collection in ascending start-date order.
func (repo *CycleRepository) Cycles() []models.Cycle {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cycles := make([]models.Cycle, len(repo.cycles))
	copy(cycles, repo.cycles)
	return cycles
}

// LastCycle returns the most recent cycle by start date.
func (repo *CycleRepository) LastCycle() (models.Cycle, bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if len(repo.cycles) == 0 {
		return models.Cycle{}, false
	}
	return repo.cycles[len(repo.cycles)-1], true
}

func (repo *CycleRepository) Count() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.cycles)
}

func (repo *CycleRepository) findLocked(id string) models.Cycle {
	for _, cycle := range repo.cycles {
		if cycle.ID == id {
			return cycle
		}
	}
	return models.Cycle{}
}

func (repo *CycleRepository) normalize() {
	sort.SliceStable(repo.cycles, func(i, j int) bool {
		return repo.cycles[i].StartDate.Before(repo.cycles[j].StartDate)
	})

	for index := range repo.cycles {
		if index == 0 {
			repo.cycles[index].CycleLength = 0
			continue
		}
		repo.cycles[index].CycleLength = repo.cycles[index].StartDate.DaysSince(repo.cycles[index-1].StartDate)
	}
}

// persist writes the whole collection through to storage. The in-memory
// state keeps the change on failure; the next successful mutation re-saves
// everything.
func (repo *CycleRepository) persist() error {
	if err := repo.storage.SaveCycles(repo.cycles); err != nil {
		if repo.log != nil {
			repo.log.WithError(err).Warn("cycle changes were not saved")
		}
		return fmt.Errorf("cycle changes not saved: %w", err)
	}
	return nil
}
