// Package mail defines the outbound mail boundary for article sharing.
package mail

import (
	"context"
	"log/slog"
)

// Message is an outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer records messages to the log instead of delivering them.
// Used in development and wherever no SMTP relay is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs instead of sending.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("outbound mail",
		"to", msg.To,
		"subject", msg.Subject,
		"body_length", len(msg.Body),
	)
	return nil
}
