package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"metzenhof/internal/entities"
)

func emailData() entities.ReservationEmailData {
	return entities.ReservationEmailData{
		RestaurantName:   "Wirtshaus Metzenhof",
		RestaurantEmail:  "wirtshaus@metzenhof.at",
		ConfirmationCode: "MH-ABC234",
		FirstName:        "Anna",
		LastName:         "Huber",
		Email:            "anna@example.at",
		Phone:            "+436641234567",
		Guests:           4,
		Table:            "R1",
		TableCapacity:    6,
		DateFormatted:    "Donnerstag, 22. Oktober 2026",
		Time:             "18:00",
		Notes:            "<b>Allergie</b>",
		CurrentYear:      2026,
	}
}

func TestFormatGermanDate(t *testing.T) {
	assert.Equal(t, "Donnerstag, 22. Oktober 2026", FormatGermanDate(time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Sonntag, 3. Jänner 2027", FormatGermanDate(time.Date(2027, 1, 3, 0, 0, 0, 0, time.UTC)))
}

func TestSendCustomerEmail(t *testing.T) {
	m := new(mockMailer)
	var sent entities.EmailMessage
	m.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(entities.EmailMessage)
	}).Return(nil)

	require.NoError(t, NewSenderService(m, nil).SendCustomerEmail(context.Background(), emailData()))

	assert.Equal(t, "anna@example.at", sent.ToAddress)
	assert.Equal(t, "Reservierungsbestätigung - Wirtshaus Metzenhof (MH-ABC234)", sent.Subject)
	assert.True(t, sent.SaveToSentItems)
	assert.Contains(t, sent.HTMLBody, "MH-ABC234")
	assert.Contains(t, sent.HTMLBody, "18:00 Uhr")
	assert.Contains(t, sent.HTMLBody, "&lt;b&gt;Allergie&lt;/b&gt;")
	assert.Contains(t, sent.PlainBody, "Tisch: R1")
}

func TestSendRestaurantEmail(t *testing.T) {
	m := new(mockMailer)
	var sent entities.EmailMessage
	m.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(entities.EmailMessage)
	}).Return(nil)

	require.NoError(t, NewSenderService(m, nil).SendRestaurantEmail(context.Background(), emailData()))

	assert.Equal(t, "wirtshaus@metzenhof.at", sent.ToAddress)
	assert.Equal(t, "Neue Reservierung: R1 - Anna Huber (Donnerstag, 22. Oktober 2026)", sent.Subject)
	assert.False(t, sent.SaveToSentItems)
	assert.Contains(t, sent.HTMLBody, "Neue Tischreservierung eingegangen")
	assert.Contains(t, sent.PlainBody, "Anmerkungen: <b>Allergie</b>")
}

func TestNotify_FailuresAreNotFatal(t *testing.T) {
	m := new(mockMailer)
	m.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Twice()
	sms := new(mockSMS)
	sms.On("SendSMS", mock.Anything, "+436641234567", mock.MatchedBy(func(body string) bool {
		return body == "Wirtshaus Metzenhof: Ihre Reservierung MH-ABC234 am Donnerstag, 22. Oktober 2026 um 18:00 Uhr für 4 Personen ist bestätigt."
	})).Return(errors.New("twilio down"))

	NewSenderService(m, sms).Notify(context.Background(), emailData())

	m.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestSendReservationSMS_Disabled(t *testing.T) {
	assert.NoError(t, NewSenderService(new(mockMailer), nil).SendReservationSMS(context.Background(), emailData()))
}

func TestTwilioSMSSender(t *testing.T) {
	api := new(mockMessageCreator)
	sid := "SM123"
	api.On("CreateMessage", mock.MatchedBy(func(p *openapi.CreateMessageParams) bool {
		return *p.To == "+436641234567" && *p.From == "+4312345" && *p.Body == "hallo"
	})).Return(&openapi.ApiV2010Message{Sid: &sid}, nil)

	s := &TwilioSMSSender{api: api, from: "+4312345"}
	require.NoError(t, s.SendSMS(context.Background(), "+436641234567", "hallo"))
	api.AssertExpectations(t)

	assert.Error(t, s.SendSMS(context.Background(), "06641234567", "hallo"))
}

func TestSendGridMailer(t *testing.T) {
	client := new(mockSendGrid)
	client.On("SendWithContext", mock.Anything, mock.Anything).Return(&rest.Response{StatusCode: 202}, nil).Once()
	client.On("SendWithContext", mock.Anything, mock.Anything).Return(&rest.Response{StatusCode: 401, Body: "unauthorized"}, nil).Once()

	m := &SendGridMailer{client: client, fromEmail: "wirtshaus@metzenhof.at", fromName: "Wirtshaus Metzenhof"}
	msg := entities.EmailMessage{ToAddress: "anna@example.at", ToName: "Anna Huber", Subject: "s", PlainBody: "p", HTMLBody: "<p>h</p>"}

	assert.NoError(t, m.Send(context.Background(), msg))
	assert.ErrorContains(t, m.Send(context.Background(), msg), "401")
}
