package services

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/HSouheill/inquiry_backend/config"
)

// Mailer delivers a plain-text message to a single recipient
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through an SMTP relay with gomail
type SMTPMailer struct {
	from string
	send func(*gomail.Message) error
}

// NewSMTPMailer dials the relay described by cfg for every message
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPMailer{
		from: cfg.From,
		send: func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// NewMailerWithSender sends through an arbitrary gomail.Sender
func NewMailerWithSender(from string, sender gomail.Sender) *SMTPMailer {
	return &SMTPMailer{
		from: from,
		send: func(m *gomail.Message) error { return gomail.Send(sender, m) },
	}
}

// SendMail blocks until the relay accepts the message or ctx is done. A send
// abandoned because of ctx may still complete in the background.
func (s *SMTPMailer) SendMail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	errCh := make(chan error, 1)
	go func() { errCh <- s.send(m) }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
