package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clubhub/models"
	"clubhub/services/mail"
)

// MockSender records sends and returns canned results.
type MockSender struct {
	SendFunc func(ctx context.Context, msg mail.Message) (string, error)
	Sent     []mail.Message
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	m.Sent = append(m.Sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return "msg-id", nil
}

func TestSubject(t *testing.T) {
	ev := models.Event{Title: "Hack Night"}
	if got := Subject(ev); got != "Reminder: Hack Night" {
		t.Errorf("subject = %q", got)
	}
}

func TestBody_Content(t *testing.T) {
	start := time.Date(2026, 4, 2, 17, 30, 0, 0, time.Local)
	ev := models.Event{
		Title:        "Resume Workshop",
		Date:         &start,
		Type:         "workshop",
		Urgency:      models.UrgencyHigh,
		Description:  "Bring a printed draft.",
		ReminderTime: 60,
	}

	body, err := Body(ev)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}

	for _, want := range []string{
		"Resume Workshop",
		start.Format("Monday, January 2, 2006 at 3:04 PM"),
		"workshop",
		"high",
		"Bring a printed draft.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\nbody: %s", want, body)
		}
	}
}

func TestBody_OmitsEmptyDescription(t *testing.T) {
	start := time.Now()
	ev := models.Event{Title: "Quick Sync", Date: &start, Type: "meeting", Urgency: models.UrgencyLow}

	body, err := Body(ev)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if strings.Contains(body, "<p></p>") {
		t.Error("body renders an empty description paragraph")
	}
}

func TestBody_EscapesHTML(t *testing.T) {
	start := time.Now()
	ev := models.Event{Title: "<script>alert(1)</script>", Date: &start}

	body, err := Body(ev)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("body contains unescaped markup")
	}
}

func TestDispatch_SendsOneEmail(t *testing.T) {
	sender := &MockSender{}
	d := &Dispatcher{Mailer: sender, From: "ClubHub <reminders@clubhub.app>"}

	start := time.Now().Add(time.Hour)
	ev := models.Event{ID: "evt-1", Title: "General Meeting", Date: &start, ReminderTime: 60}
	recipient := models.Member{ID: "m1", Email: "a@campus.edu"}

	id, err := d.Dispatch(context.Background(), ev, recipient)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if id != "msg-id" {
		t.Errorf("message id = %q", id)
	}
	if len(sender.Sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.Sent))
	}

	msg := sender.Sent[0]
	if msg.From != d.From {
		t.Errorf("from = %q", msg.From)
	}
	if len(msg.To) != 1 || msg.To[0] != "a@campus.edu" {
		t.Errorf("to = %v", msg.To)
	}
	if msg.Subject != "Reminder: General Meeting" {
		t.Errorf("subject = %q", msg.Subject)
	}
}

func TestDispatch_TransportFailure(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(ctx context.Context, msg mail.Message) (string, error) {
			return "", errors.New("provider rejected the request")
		},
	}
	d := &Dispatcher{Mailer: sender, From: "reminders@clubhub.app"}

	start := time.Now()
	ev := models.Event{ID: "evt-1", Title: "General Meeting", Date: &start}
	recipient := models.Member{ID: "m1", Email: "a@campus.edu"}

	_, err := d.Dispatch(context.Background(), ev, recipient)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "a@campus.edu") {
		t.Errorf("error should name the recipient: %v", err)
	}
}
