package services

import (
	"errors"
	"testing"

	"github.com/MercySpectures/shetrack-simple-cycles/internal/models"
)

type fakeReminderStorage struct {
	reminders []models.Reminder
	saves     int
}

func (storage *fakeReminderStorage) LoadReminders() ([]models.Reminder, error) {
	return storage.reminders, nil
}

func (storage *fakeReminderStorage) SaveReminders(reminders []models.Reminder) error {
	storage.saves++
	storage.reminders = append([]models.Reminder(nil), reminders...)
	return nil
}

func newTestReminders(t *testing.T) (*ReminderRepository, *fakeReminderStorage) {
	t.Helper()
	storage := &fakeReminderStorage{}
	repo, err := NewReminderRepository(storage, nil)
	if err != nil {
		t.Fatalf("new reminder repository: %v", err)
	}
	return repo, storage
}

func TestRemindersOrderIncompleteFirstThenByDate(t *testing.T) {
	repo, _ := newTestReminders(t)

	done, err := repo.AddReminder(mustDay(t, "2024-01-02"), "Refill prescription", "")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := repo.AddReminder(mustDay(t, "2024-01-20"), "Doctor appointment", "bring test results"); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := repo.AddReminder(mustDay(t, "2024-01-05"), "Buy supplies", ""); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	done.Completed = true
	if _, err := repo.UpdateReminder(done); err != nil {
		t.Fatalf("complete reminder: %v", err)
	}

	ordered := repo.Reminders()
	expectedTitles := []string{"Buy supplies", "Doctor appointment", "Refill prescription"}
	for i, reminder := range ordered {
		if reminder.Title != expectedTitles[i] {
			t.Fatalf("expected %q at position %d, got %q", expectedTitles[i], i, reminder.Title)
		}
	}
}

func TestReminderTitleRequired(t *testing.T) {
	repo, _ := newTestReminders(t)
	if _, err := repo.AddReminder(mustDay(t, "2024-01-02"), "   ", ""); !errors.Is(err, ErrReminderTitleRequired) {
		t.Fatalf("expected ErrReminderTitleRequired, got %v", err)
	}
}

func TestReminderUpdateAndDeleteUnknownID(t *testing.T) {
	repo, _ := newTestReminders(t)

	missing := models.Reminder{ID: "no-such-id", Date: mustDay(t, "2024-01-02"), Title: "Anything"}
	if _, err := repo.UpdateReminder(missing); !errors.Is(err, ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound on update, got %v", err)
	}
	if err := repo.DeleteReminder("no-such-id"); !errors.Is(err, ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound on delete, got %v", err)
	}
}

func TestDueRemindersSkipCompletedAndOtherDates(t *testing.T) {
	repo, _ := newTestReminders(t)

	today := mustDay(t, "2024-01-10")
	due, err := repo.AddReminder(today, "Take iron supplement", "")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := repo.AddReminder(mustDay(t, "2024-01-11"), "Tomorrow", ""); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	completed, err := repo.AddReminder(today, "Already handled", "")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	completed.Completed = true
	if _, err := repo.UpdateReminder(completed); err != nil {
		t.Fatalf("complete reminder: %v", err)
	}

	dueToday := repo.DueReminders(today)
	if len(dueToday) != 1 || dueToday[0].ID != due.ID {
		t.Fatalf("expected exactly the open reminder for today, got %v", dueToday)
	}
}
