package reminder

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"clubhub/models"
	"clubhub/services/mail"
)

// bodyTemplate renders the reminder email. Kept as a template (rather than
// string concatenation in the send loop) so content can be tested without a
// mail transport.
var bodyTemplate = template.Must(template.New("reminder").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Upcoming event: {{.Title}}</h2>
  <p><strong>When:</strong> {{.When}}</p>
  <p><strong>Category:</strong> {{.Type}}</p>
  <p><strong>Urgency:</strong> {{.Urgency}}</p>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  <p style="color: #888; font-size: 12px;">You are receiving this because event reminders are enabled in your ClubHub settings.</p>
</div>`))

type bodyData struct {
	Title       string
	When        string
	Type        string
	Urgency     string
	Description string
}

// Subject returns the reminder subject line for an event.
func Subject(ev models.Event) string {
	return "Reminder: " + ev.Title
}

// Body renders the deterministic HTML body for an event reminder.
func Body(ev models.Event) (string, error) {
	when := ""
	if ev.Date != nil {
		when = ev.Date.Local().Format("Monday, January 2, 2006 at 3:04 PM")
	}
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, bodyData{
		Title:       ev.Title,
		When:        when,
		Type:        ev.Type,
		Urgency:     ev.Urgency,
		Description: ev.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render reminder body: %w", err)
	}
	return buf.String(), nil
}

// Dispatcher turns one (event, recipient) pair into one outbound email.
type Dispatcher struct {
	Mailer mail.Sender
	From   string
}

// Dispatch renders and sends a single reminder. Exactly one send attempt is
// made; retries belong to the transport or the invoking scheduler.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.Event, recipient models.Member) (string, error) {
	html, err := Body(ev)
	if err != nil {
		return "", fmt.Errorf("dispatch to %s: %w", recipient.Email, err)
	}

	id, err := d.Mailer.Send(ctx, mail.Message{
		From:    d.From,
		To:      []string{recipient.Email},
		Subject: Subject(ev),
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("dispatch to %s: %w", recipient.Email, err)
	}
	return id, nil
}
