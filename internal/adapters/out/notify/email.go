// Package notify adapts outbound notification channels to the email and SMS
// sender ports.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPEmailSender delivers email through a plain SMTP relay.
type SMTPEmailSender struct {
	host string
	port int
	from string
	auth smtp.Auth
}

// NewSMTPEmailSender creates an email sender. Username and password may be
// empty for relays that accept unauthenticated mail.
func NewSMTPEmailSender(host string, port int, from, username, password string) *SMTPEmailSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPEmailSender{
		host: host,
		port: port,
		from: from,
		auth: auth,
	}
}

// Send delivers one message. The context is honored up to handing the message
// to the relay; smtp.SendMail itself is not cancellable.
func (s *SMTPEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, to, subject, body,
	)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, s.auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
