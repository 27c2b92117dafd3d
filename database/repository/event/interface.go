package eventRepo

import (
	"context"

	"clubhub/models"
)

// EventRepository defines methods for calendar event data access.
type EventRepository interface {
	// GetByID retrieves an event by its unique ID.
	GetByID(id string) (*models.Event, error)
	// GetAll retrieves all events.
	GetAll() ([]models.Event, error)
	// WithReminders retrieves events with reminderTime > 0 and a non-null date.
	WithReminders(ctx context.Context) ([]models.Event, error)
	// Create inserts a new event record.
	Create(event *models.Event) error
	// Update modifies an existing event record.
	Update(event *models.Event) error
	// Delete removes an event record by its ID.
	Delete(id string) error
}
