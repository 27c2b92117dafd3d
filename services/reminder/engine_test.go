package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubhub/models"
	"clubhub/services/mail"
)

type MockEventSource struct {
	WithRemindersFunc func(ctx context.Context) ([]models.Event, error)
	Calls             int
}

func (m *MockEventSource) WithReminders(ctx context.Context) ([]models.Event, error) {
	m.Calls++
	return m.WithRemindersFunc(ctx)
}

type MockMemberSource struct {
	WithEmailFunc func(ctx context.Context) ([]models.Member, error)
	Calls         int
}

func (m *MockMemberSource) WithEmail(ctx context.Context) ([]models.Member, error) {
	m.Calls++
	if m.WithEmailFunc != nil {
		return m.WithEmailFunc(ctx)
	}
	return nil, nil
}

type MockGuard struct {
	MarkSentFunc func(ctx context.Context, eventID, memberID string) (bool, error)
}

func (m *MockGuard) MarkSent(ctx context.Context, eventID, memberID string) (bool, error) {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, eventID, memberID)
	}
	return false, nil
}

func validConfig() Config {
	return Config{
		StoreURL:        "mongodb://localhost:27017",
		StoreCredential: "service-key",
		MailAPIKey:      "re_test_key",
		From:            "reminders@clubhub.app",
	}
}

func dueEventNow(id string, now time.Time) models.Event {
	start := now.Add(30 * time.Minute)
	return models.Event{ID: id, Title: "Event " + id, Date: &start, ReminderTime: 30}
}

func newTestEngine(events *MockEventSource, members *MockMemberSource, sender *MockSender) *Engine {
	return &Engine{
		Config:     validConfig(),
		Events:     events,
		Members:    members,
		Dispatcher: &Dispatcher{Mailer: sender, From: "reminders@clubhub.app"},
	}
}

func TestRun_MissingConfig(t *testing.T) {
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			t.Fatal("store queried despite missing configuration")
			return nil, nil
		},
	}
	engine := newTestEngine(events, &MockMemberSource{}, &MockSender{})
	engine.Config.MailAPIKey = ""
	engine.Config.StoreCredential = ""

	_, err := engine.Run(context.Background(), time.Now())
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Errorf("missing = %v, want both absent keys named", cfgErr.Missing)
	}
	if events.Calls != 0 {
		t.Error("event store was queried")
	}
}

func TestRun_EventStoreFailureAborts(t *testing.T) {
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return nil, errors.New("connection refused")
		},
	}
	engine := newTestEngine(events, &MockMemberSource{}, &MockSender{})

	_, err := engine.Run(context.Background(), time.Now())
	var storeErr StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("err = %v, want StoreError", err)
	}
}

func TestRun_NoDueEvents_SkipsMemberQuery(t *testing.T) {
	now := time.Now()
	future := dueEventNow("evt-1", now.Add(4*time.Hour))

	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{future}, nil
		},
	}
	members := &MockMemberSource{
		WithEmailFunc: func(ctx context.Context) ([]models.Member, error) {
			t.Fatal("member store queried with no due events")
			return nil, nil
		},
	}
	engine := newTestEngine(events, members, &MockSender{})

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CandidateEvents != 1 || result.DueEvents != 0 || result.Sent != 0 {
		t.Errorf("result = %+v", result)
	}
	if members.Calls != 0 {
		t.Error("member store was queried")
	}
}

// One due event, two members: one opted out, one with no settings. The
// opted-out member is filtered before dispatch, not counted as a failure.
func TestRun_OptedOutMemberNotAttempted(t *testing.T) {
	now := time.Now()
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{dueEventNow("evt-1", now)}, nil
		},
	}
	members := &MockMemberSource{
		WithEmailFunc: func(ctx context.Context) ([]models.Member, error) {
			return []models.Member{
				{ID: "m1", Email: "optout@campus.edu", Settings: &models.MemberSettings{EmailNotifications: boolPtr(false)}},
				{ID: "m2", Email: "default@campus.edu"},
			}, nil
		},
	}
	sender := &MockSender{}
	engine := newTestEngine(events, members, sender)

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Attempted != 1 || result.Sent != 1 || len(result.Failures) != 0 {
		t.Errorf("result = %+v, want 1 attempted, 1 sent, 0 failures", result)
	}
	if len(sender.Sent) != 1 || sender.Sent[0].To[0] != "default@campus.edu" {
		t.Errorf("sent = %+v", sender.Sent)
	}
}

// Transport failure for one of two eligible recipients: one success, one
// recorded failure, and the run still processes the remaining due event.
func TestRun_PartialDeliveryFailure(t *testing.T) {
	now := time.Now()
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{dueEventNow("evt-1", now), dueEventNow("evt-2", now)}, nil
		},
	}
	members := &MockMemberSource{
		WithEmailFunc: func(ctx context.Context) ([]models.Member, error) {
			return []models.Member{
				{ID: "m1", Email: "bounce@campus.edu"},
				{ID: "m2", Email: "ok@campus.edu"},
			}, nil
		},
	}
	sender := &MockSender{
		SendFunc: func(ctx context.Context, msg mail.Message) (string, error) {
			if msg.To[0] == "bounce@campus.edu" {
				return "", errors.New("mailbox unavailable")
			}
			return "msg-id", nil
		},
	}
	engine := newTestEngine(events, members, sender)

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.DueEvents != 2 {
		t.Errorf("due = %d, want 2", result.DueEvents)
	}
	if result.Attempted != 4 || result.Sent != 2 || len(result.Failures) != 2 {
		t.Errorf("result = %+v, want 4 attempted, 2 sent, 2 failures", result)
	}
	for _, f := range result.Failures {
		if f.Recipient != "bounce@campus.edu" {
			t.Errorf("failure recipient = %q", f.Recipient)
		}
	}
}

// A member-store failure skips that event's sends but the run continues
// with the other due events.
func TestRun_MemberFetchFailureSkipsEvent(t *testing.T) {
	now := time.Now()
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{dueEventNow("evt-1", now), dueEventNow("evt-2", now)}, nil
		},
	}
	members := &MockMemberSource{}
	members.WithEmailFunc = func(ctx context.Context) ([]models.Member, error) {
		if members.Calls == 1 {
			return nil, errors.New("timeout")
		}
		return []models.Member{{ID: "m1", Email: "a@campus.edu"}}, nil
	}
	sender := &MockSender{}
	engine := newTestEngine(events, members, sender)

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Sent != 1 {
		t.Errorf("sent = %d, want 1 (second event only)", result.Sent)
	}
	if members.Calls != 2 {
		t.Errorf("member queries = %d, want 2", members.Calls)
	}
}

func TestRun_GuardSuppressesResend(t *testing.T) {
	now := time.Now()
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{dueEventNow("evt-1", now)}, nil
		},
	}
	members := &MockMemberSource{
		WithEmailFunc: func(ctx context.Context) ([]models.Member, error) {
			return []models.Member{
				{ID: "m1", Email: "a@campus.edu"},
				{ID: "m2", Email: "b@campus.edu"},
			}, nil
		},
	}
	sender := &MockSender{}
	engine := newTestEngine(events, members, sender)
	engine.Guard = &MockGuard{
		MarkSentFunc: func(ctx context.Context, eventID, memberID string) (bool, error) {
			return memberID == "m1", nil // m1 already claimed by an earlier run
		},
	}

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Deduplicated != 1 || result.Attempted != 1 || result.Sent != 1 {
		t.Errorf("result = %+v, want 1 deduplicated, 1 attempted, 1 sent", result)
	}
}

func TestRun_GuardFailureFailsOpen(t *testing.T) {
	now := time.Now()
	events := &MockEventSource{
		WithRemindersFunc: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{dueEventNow("evt-1", now)}, nil
		},
	}
	members := &MockMemberSource{
		WithEmailFunc: func(ctx context.Context) ([]models.Member, error) {
			return []models.Member{{ID: "m1", Email: "a@campus.edu"}}, nil
		},
	}
	sender := &MockSender{}
	engine := newTestEngine(events, members, sender)
	engine.Guard = &MockGuard{
		MarkSentFunc: func(ctx context.Context, eventID, memberID string) (bool, error) {
			return false, errors.New("redis down")
		},
	}

	result, err := engine.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Sent != 1 {
		t.Errorf("sent = %d, want 1 (guard outage must not silence reminders)", result.Sent)
	}
}
