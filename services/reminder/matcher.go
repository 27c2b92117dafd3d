package reminder

import (
	"time"

	"clubhub/models"
)

// DueWindow is how long after its scheduled instant a reminder stays due.
// The window is one-sided: a reminder whose instant is still in the future
// is never due, even if it falls within the window's width.
const DueWindow = 5 * time.Minute

// NotificationInstant returns the instant at which the event's reminder
// should fire, and false when the event carries no usable reminder
// (zero lead time or no start date).
func NotificationInstant(ev models.Event) (time.Time, bool) {
	if ev.ReminderTime <= 0 || ev.Date == nil {
		return time.Time{}, false
	}
	return ev.Date.Add(-time.Duration(ev.ReminderTime) * time.Minute), true
}

// DueEvents returns the subset of events whose reminder instant has passed,
// but by no more than DueWindow (closed interval). Pure function of now and
// the event set; input order is preserved.
func DueEvents(now time.Time, events []models.Event) []models.Event {
	var due []models.Event
	for _, ev := range events {
		at, ok := NotificationInstant(ev)
		if !ok {
			continue
		}
		if at.After(now) {
			continue
		}
		if now.Sub(at) > DueWindow {
			continue
		}
		due = append(due, ev)
	}
	return due
}
