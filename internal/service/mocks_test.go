package service

import (
	"context"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"metzenhof/internal/entities"
)

type mockCalendar struct{ mock.Mock }

func (m *mockCalendar) ListEvents(ctx context.Context, start, end time.Time) ([]entities.CalendarEvent, error) {
	args := m.Called(ctx, start, end)
	events, _ := args.Get(0).([]entities.CalendarEvent)
	return events, args.Error(1)
}

func (m *mockCalendar) CreateEvent(ctx context.Context, ev entities.CalendarEvent) error {
	return m.Called(ctx, ev).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, data entities.ReservationEmailData) {
	m.Called(ctx, data)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg entities.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) SendSMS(ctx context.Context, to, body string) error {
	return m.Called(ctx, to, body).Error(0)
}

type mockMessageCreator struct{ mock.Mock }

func (m *mockMessageCreator) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	args := m.Called(params)
	msg, _ := args.Get(0).(*openapi.ApiV2010Message)
	return msg, args.Error(1)
}

type mockSendGrid struct{ mock.Mock }

func (m *mockSendGrid) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	resp, _ := args.Get(0).(*rest.Response)
	return resp, args.Error(1)
}
