package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"metzenhof/internal/entities"
)

// Mailer sends one email. *graph.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client    sendGridClient
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg entities.EmailMessage) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToAddress)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainBody, msg.HTMLBody)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", msg.ToAddress, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	log.Debug().Str("to", msg.ToAddress).Int("status", response.StatusCode).Msg("email sent via sendgrid")
	return nil
}

// LogMailer only logs; used when MAIL_PROVIDER=none.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg entities.EmailMessage) error {
	log.Info().Str("to", msg.ToAddress).Str("subject", msg.Subject).Msg("email not sent, mail provider disabled")
	return nil
}
