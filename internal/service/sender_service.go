package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/rs/zerolog/log"

	"metzenhof/internal/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var (
	germanWeekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	// Austrian German: Jänner instead of Januar.
	germanMonths = [...]string{"Jänner", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
)

// FormatGermanDate renders t like "Donnerstag, 22. Oktober 2026".
func FormatGermanDate(t time.Time) string {
	return fmt.Sprintf("%s, %d. %s %d", germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()-1], t.Year())
}

func renderTemplate(name string, data entities.ReservationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// SenderService delivers the booking notifications: the guest's
// confirmation, the restaurant's copy and an optional SMS.
type SenderService struct {
	mailer Mailer
	sms    SMSSender
}

// NewSenderService accepts a nil sms sender when SMS is not configured.
func NewSenderService(mailer Mailer, sms SMSSender) *SenderService {
	return &SenderService{mailer: mailer, sms: sms}
}

func (s *SenderService) SendCustomerEmail(ctx context.Context, data entities.ReservationEmailData) error {
	html, err := renderTemplate("customer_email.html", data)
	if err != nil {
		return err
	}
	plain := fmt.Sprintf(
		"Guten Tag %s %s,\n\nIhre Reservierung im %s ist bestätigt.\n\n"+
			"Reservierungscode: %s\nDatum: %s\nUhrzeit: %s Uhr\nPersonen: %d\nTisch: %s\n\n"+
			"Bei Änderungen oder Stornierungen kontaktieren Sie uns bitte unter %s.\n\n"+
			"Mit freundlichen Grüßen,\nIhr Team vom %s",
		data.FirstName, data.LastName, data.RestaurantName,
		data.ConfirmationCode, data.DateFormatted, data.Time, data.Guests, data.Table,
		data.RestaurantEmail, data.RestaurantName,
	)
	return s.mailer.Send(ctx, entities.EmailMessage{
		ToAddress:       data.Email,
		ToName:          data.FirstName + " " + data.LastName,
		Subject:         fmt.Sprintf("Reservierungsbestätigung - %s (%s)", data.RestaurantName, data.ConfirmationCode),
		PlainBody:       plain,
		HTMLBody:        html,
		SaveToSentItems: true,
	})
}

func (s *SenderService) SendRestaurantEmail(ctx context.Context, data entities.ReservationEmailData) error {
	html, err := renderTemplate("restaurant_email.html", data)
	if err != nil {
		return err
	}
	plain := fmt.Sprintf(
		"Neue Tischreservierung %s\n\nDatum: %s\nUhrzeit: %s Uhr\nTisch: %s\nPersonen: %d\n\n"+
			"Name: %s %s\nE-Mail: %s\nTelefon: %s\n",
		data.ConfirmationCode, data.DateFormatted, data.Time, data.Table, data.Guests,
		data.FirstName, data.LastName, data.Email, data.Phone,
	)
	if data.Notes != "" {
		plain += "Anmerkungen: " + data.Notes + "\n"
	}
	return s.mailer.Send(ctx, entities.EmailMessage{
		ToAddress: data.RestaurantEmail,
		ToName:    data.RestaurantName,
		Subject:   fmt.Sprintf("Neue Reservierung: %s - %s %s (%s)", data.Table, data.FirstName, data.LastName, data.DateFormatted),
		PlainBody: plain,
		HTMLBody:  html,
	})
}

// SendReservationSMS is a no-op without an SMS sender.
func (s *SenderService) SendReservationSMS(ctx context.Context, data entities.ReservationEmailData) error {
	if s.sms == nil {
		return nil
	}
	body := fmt.Sprintf("%s: Ihre Reservierung %s am %s um %s Uhr für %d Personen ist bestätigt.",
		data.RestaurantName, data.ConfirmationCode, data.DateFormatted, data.Time, data.Guests)
	return s.sms.SendSMS(ctx, data.Phone, body)
}

// Notify sends all notifications for a stored booking. Failures are logged
// and do not undo the booking.
func (s *SenderService) Notify(ctx context.Context, data entities.ReservationEmailData) {
	if err := s.SendCustomerEmail(ctx, data); err != nil {
		log.Error().Err(err).Str("code", data.ConfirmationCode).Msg("customer email failed")
	}
	if err := s.SendRestaurantEmail(ctx, data); err != nil {
		log.Error().Err(err).Str("code", data.ConfirmationCode).Msg("restaurant email failed")
	}
	if err := s.SendReservationSMS(ctx, data); err != nil {
		log.Warn().Err(err).Str("code", data.ConfirmationCode).Msg("confirmation sms failed")
	}
}
