// Package mail is the outbound mail collaborator. The core decides when to
// send and what to pass; the transport lives behind the Mailer interface.
package mail

import (
	"context"
	"log/slog"
)

// Message is everything the core hands over: recipient, subject, plain-text
// body, and the path of the generated artifact to attach.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer stands in when no SMTP host is configured: deliveries are logged
// and dropped so the rest of the flow still works in development.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{log: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("mail.dropped", "recipient", msg.To, "subject", msg.Subject, "attachment", msg.AttachmentPath)
	return nil
}
