package reminder

import (
	"context"
	"time"

	"clubhub/models"
	"clubhub/utils"

	"go.uber.org/zap"
)

// Config is the runtime configuration the engine requires. It is validated
// eagerly so a missing secret fails the run before any query is attempted.
type Config struct {
	StoreURL        string
	StoreCredential string
	MailAPIKey      string
	From            string
}

// Validate returns a ConfigError naming every missing required value.
func (c Config) Validate() error {
	var missing []string
	if c.StoreURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.StoreCredential == "" {
		missing = append(missing, "DATABASE_CREDENTIAL")
	}
	if c.MailAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	if len(missing) > 0 {
		return ConfigError{Missing: missing}
	}
	return nil
}

// Engine coordinates one reminder run: match due events, filter recipients,
// dispatch, aggregate. Stateless between runs.
type Engine struct {
	Config     Config
	Events     EventSource
	Members    MemberSource
	Dispatcher *Dispatcher
	// Guard, when set, suppresses resends for pairs already handed to the
	// mail provider. Nil preserves the original duplicate-risk behavior.
	Guard SentGuard
}

// NewEngine validates the configuration eagerly and assembles an engine.
func NewEngine(cfg Config, events EventSource, members MemberSource, dispatcher *Dispatcher) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		Config:     cfg,
		Events:     events,
		Members:    members,
		Dispatcher: dispatcher,
	}, nil
}

// Run executes one reminder pass at the given instant.
//
// Event-store failure aborts the run. A member-store failure skips that
// event's sends but the run continues. Individual delivery failures are
// recorded in the result and never abort the run. When no event is due the
// member store is not queried at all.
func (e *Engine) Run(ctx context.Context, now time.Time) (*models.RunResult, error) {
	logger := utils.GetLogger()

	if err := e.Config.Validate(); err != nil {
		return nil, err
	}

	events, err := e.Events.WithReminders(ctx)
	if err != nil {
		return nil, StoreError{Op: "events", Err: err}
	}

	result := &models.RunResult{CandidateEvents: len(events)}

	due := DueEvents(now, events)
	result.DueEvents = len(due)
	if len(due) == 0 {
		logger.Debug("No due events", zap.Int("candidates", len(events)), zap.Time("now", now))
		return result, nil
	}

	for _, ev := range due {
		members, err := e.Members.WithEmail(ctx)
		if err != nil {
			logger.Warn("Skipping event, member fetch failed",
				zap.String("eventId", ev.ID),
				zap.String("event", ev.Title),
				zap.Error(err))
			continue
		}

		for _, recipient := range EligibleRecipients(members) {
			if e.Guard != nil {
				already, err := e.Guard.MarkSent(ctx, ev.ID, recipient.ID)
				if err != nil {
					// Fail open: a guard outage degrades to the
					// duplicate-risk behavior, not to silence.
					logger.Warn("Sent guard unavailable, sending anyway",
						zap.String("eventId", ev.ID), zap.Error(err))
				} else if already {
					result.Deduplicated++
					continue
				}
			}

			result.Attempted++
			msgID, err := e.Dispatcher.Dispatch(ctx, ev, recipient)
			if err != nil {
				result.Failures = append(result.Failures, models.DeliveryFailure{
					EventID:   ev.ID,
					Recipient: recipient.Email,
					Reason:    err.Error(),
				})
				logger.Warn("Reminder delivery failed",
					zap.String("eventId", ev.ID),
					zap.String("recipient", recipient.Email),
					zap.Error(err))
				continue
			}
			result.Sent++
			logger.Info("Reminder sent",
				zap.String("eventId", ev.ID),
				zap.String("event", ev.Title),
				zap.String("recipient", recipient.Email),
				zap.String("messageId", msgID))
		}
	}

	logger.Info("Reminder run complete",
		zap.Int("candidates", result.CandidateEvents),
		zap.Int("due", result.DueEvents),
		zap.Int("attempted", result.Attempted),
		zap.Int("sent", result.Sent),
		zap.Int("deduplicated", result.Deduplicated),
		zap.Int("failed", len(result.Failures)))
	return result, nil
}
