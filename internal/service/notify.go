package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers short text messages to a guest's phone.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioSMSSender struct {
	api  messageCreator
	from string
}

func NewTwilioSMSSender(accountSID, authToken, fromNumber string) *TwilioSMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})
	return &TwilioSMSSender{api: client.Api, from: fromNumber}
}

// SendSMS sends body to a number in E.164 form. The Twilio client offers no
// context support; ctx is only checked before the call.
func (s *TwilioSMSSender) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(to, "+") {
		return fmt.Errorf("phone number %q is not in E.164 format", to)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Debug().Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
