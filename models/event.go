package models

import "time"

// Event urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Event represents a calendar entry. ReminderTime is the lead time in
// minutes before Date at which a reminder email fires; 0 means no reminder.
type Event struct {
	ID           string     `bson:"id" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Date         *time.Time `bson:"date" json:"date"`
	Type         string     `bson:"type" json:"type"`
	Urgency      string     `bson:"urgency" json:"urgency"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	ReminderTime int        `bson:"reminderTime" json:"reminderTime"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
