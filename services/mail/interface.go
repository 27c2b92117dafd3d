package mail

import "context"

// Message represents an email message to be sent.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender is the interface that email providers must implement. The returned
// string is the provider's message id for the accepted send.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
