package reminder

import (
	"testing"
	"time"

	"clubhub/models"
)

func eventAt(start time.Time, reminderMinutes int) models.Event {
	return models.Event{
		ID:           "evt-1",
		Title:        "General Meeting",
		Date:         &start,
		Type:         "meeting",
		Urgency:      models.UrgencyMedium,
		ReminderTime: reminderMinutes,
	}
}

// TestDueEvents_Window checks the one-sided 5-minute due window around the
// derived notification instant.
func TestDueEvents_Window(t *testing.T) {
	// Event starts at T+60min with a 60-minute lead time, so the
	// notification instant is exactly T.
	T := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	event := eventAt(T.Add(60*time.Minute), 60)

	tests := []struct {
		name string
		now  time.Time
		due  bool
	}{
		{"at the notification instant", T, true},
		{"ten minutes early", T.Add(-10 * time.Minute), false},
		{"one second early", T.Add(-1 * time.Second), false},
		{"four minutes late", T.Add(4 * time.Minute), true},
		{"exactly five minutes late", T.Add(5 * time.Minute), true},
		{"six minutes late", T.Add(6 * time.Minute), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			due := DueEvents(tc.now, []models.Event{event})
			if got := len(due) == 1; got != tc.due {
				t.Errorf("due = %v, want %v (now=%v)", got, tc.due, tc.now)
			}
		})
	}
}

// TestDueEvents_NoReminder checks that a zero lead time is never due, no
// matter where now falls.
func TestDueEvents_NoReminder(t *testing.T) {
	start := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	event := eventAt(start, 0)

	for _, now := range []time.Time{
		start,
		start.Add(-60 * time.Minute),
		start.Add(-2 * time.Minute),
		start.Add(90 * time.Minute),
	} {
		if due := DueEvents(now, []models.Event{event}); len(due) != 0 {
			t.Errorf("event with zero reminderTime marked due at now=%v", now)
		}
	}
}

func TestDueEvents_NilDate(t *testing.T) {
	event := models.Event{ID: "evt-2", Title: "Dateless", ReminderTime: 30}
	if due := DueEvents(time.Now(), []models.Event{event}); len(due) != 0 {
		t.Error("event without a start date marked due")
	}
}

func TestDueEvents_MixedSet(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	dueEvent := eventAt(now.Add(30*time.Minute), 30)
	dueEvent.ID = "due"
	futureEvent := eventAt(now.Add(4*time.Hour), 30)
	futureEvent.ID = "future"
	staleEvent := eventAt(now.Add(10*time.Minute), 30)
	staleEvent.ID = "stale" // notification instant passed 20 minutes ago

	due := DueEvents(now, []models.Event{futureEvent, dueEvent, staleEvent})
	if len(due) != 1 || due[0].ID != "due" {
		t.Fatalf("due = %+v, want exactly the event whose instant is now", due)
	}
}

func TestNotificationInstant(t *testing.T) {
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	event := eventAt(start, 45)

	at, ok := NotificationInstant(event)
	if !ok {
		t.Fatal("expected a notification instant")
	}
	if want := start.Add(-45 * time.Minute); !at.Equal(want) {
		t.Errorf("instant = %v, want %v", at, want)
	}

	if _, ok := NotificationInstant(eventAt(start, 0)); ok {
		t.Error("zero lead time should have no notification instant")
	}
}
