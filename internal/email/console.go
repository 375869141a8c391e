package email

import (
	"context"

	"taskhive-backend/internal/logger"
)

// ConsoleProvider logs emails instead of sending them. Used in local
// development and tests, when no SendGrid key is configured.
type ConsoleProvider struct{}

func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

func (p *ConsoleProvider) Name() string {
	return "console"
}

func (p *ConsoleProvider) Send(_ context.Context, msg *Message) error {
	logger.Info("Email (console provider)",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}
