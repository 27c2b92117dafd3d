package reminder

import (
	"context"
	"time"

	"clubhub/models"
)

// EventSource supplies calendar events that carry a reminder lead time.
type EventSource interface {
	WithReminders(ctx context.Context) ([]models.Event, error)
}

// MemberSource supplies members that have an email address on file.
type MemberSource interface {
	WithEmail(ctx context.Context) ([]models.Member, error)
}

// SentGuard records that a reminder for (eventID, memberID) was handed to
// the mail provider. MarkSent returns true when a record already existed,
// i.e. the pair was sent by an earlier or concurrent run.
type SentGuard interface {
	MarkSent(ctx context.Context, eventID, memberID string) (bool, error)
}

// Runner is the trigger-facing surface of the engine.
type Runner interface {
	Run(ctx context.Context, now time.Time) (*models.RunResult, error)
}
