// Package email holds the outbound email providers and templates. The
// dispatch and audit logic lives in the service layer; providers only
// perform a single delivery attempt.
package email

import "context"

// Message is one outbound email, already rendered.
type Message struct {
	To      string
	ToName  string
	Subject string
	Html    string
	Text    string
}

// Provider performs a single delivery attempt.
type Provider interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}
