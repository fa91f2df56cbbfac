package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"metzenhof/internal/entities"
	"metzenhof/internal/repository"
	"metzenhof/internal/restaurant"
	"metzenhof/internal/validation"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownTable   = errors.New("unknown table")
)

var tracer = otel.Tracer("metzenhof/internal/service")

// Notifier delivers the messages that follow a stored booking.
type Notifier interface {
	Notify(ctx context.Context, data entities.ReservationEmailData)
}

type ReservationService struct {
	cfg      restaurant.Config
	calendar repository.CalendarRepository
	notifier Notifier

	now     func() time.Time
	newCode func() (string, error)
	newTxID func() string
}

func NewReservationService(cfg restaurant.Config, calendar repository.CalendarRepository, notifier Notifier) *ReservationService {
	return &ReservationService{
		cfg:      cfg,
		calendar: calendar,
		notifier: notifier,
		now:      time.Now,
		newCode:  restaurant.NewConfirmationCode,
		newTxID:  func() string { return uuid.NewString() },
	}
}

func (s *ReservationService) Config() restaurant.Config { return s.cfg }

func (s *ReservationService) parseStart(date, clock string) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, s.cfg.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q time %q", ErrInvalidRequest, date, clock)
	}
	return start, nil
}

// CheckAvailability lists the tables taken by any calendar event overlapping
// a reservation that starts at date/time.
func (s *ReservationService) CheckAvailability(ctx context.Context, date, clock string) (*entities.AvailabilitySnapshot, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.CheckAvailability")
	defer span.End()
	span.SetAttributes(attribute.String("booking.date", date), attribute.String("booking.time", clock))

	start, err := s.parseStart(date, clock)
	if err != nil {
		return nil, err
	}
	events, err := s.calendar.ListEvents(ctx, start, start.Add(s.cfg.Duration()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list events")
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	booked := BookedTables(events, s.cfg.Tables)
	span.SetAttributes(attribute.Int("booking.booked_tables", len(booked)))
	return &entities.AvailabilitySnapshot{Date: date, Time: clock, BookedTables: booked}, nil
}

// CreateBooking stores the booking as a calendar event and then notifies the
// guest and the restaurant.
func (s *ReservationService) CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.CreateBooking")
	defer span.End()

	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	table, ok := s.cfg.Table(req.Table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, req.Table)
	}
	start, err := s.parseStart(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}
	span.SetAttributes(
		attribute.String("booking.code", code),
		attribute.String("booking.table", table.ID),
		attribute.Int("booking.guests", req.Guests),
	)

	data := entities.ReservationEmailData{
		RestaurantName:   s.cfg.Name,
		RestaurantEmail:  s.cfg.Mailbox,
		ConfirmationCode: code,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Guests:           req.Guests,
		Table:            table.ID,
		TableCapacity:    table.Capacity,
		DateFormatted:    FormatGermanDate(start),
		Time:             req.Time,
		Notes:            req.Notes,
		CurrentYear:      s.now().In(s.cfg.Location()).Year(),
	}
	body, err := renderTemplate("event_body.html", data)
	if err != nil {
		return nil, err
	}

	ev := entities.CalendarEvent{
		TransactionID: s.newTxID(),
		Subject:       fmt.Sprintf("Reservierung %s - %s (%d Pers.)", table.ID, req.FullName(), req.Guests),
		BodyHTML:      body,
		Location:      "Tisch " + table.ID,
		Categories:    []string{entities.CategoryReservation, table.ID},
		ShowAs:        entities.ShowAsBusy,
		Start:         start,
		End:           start.Add(s.cfg.Duration()),
	}
	if err := s.calendar.CreateEvent(ctx, ev); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create event")
		return nil, fmt.Errorf("create calendar event: %w", err)
	}
	log.Info().Str("code", code).Str("table", table.ID).Str("start", start.Format(time.RFC3339)).Msg("reservation stored")

	s.notifier.Notify(ctx, data)

	return &entities.BookingResponse{
		Success:          true,
		ConfirmationCode: code,
		Message:          "Reservierung erfolgreich erstellt",
	}, nil
}

// ListReservations returns the calendar events of one day for staff.
func (s *ReservationService) ListReservations(ctx context.Context, date string) (*entities.ReservationsList, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.ListReservations")
	defer span.End()

	day, err := time.ParseInLocation("2006-01-02", date, s.cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidRequest, date)
	}
	events, err := s.calendar.ListEvents(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	list := &entities.ReservationsList{Date: date, Reservations: make([]entities.ReservationSummary, 0, len(events))}
	for _, ev := range events {
		list.Reservations = append(list.Reservations, entities.ReservationSummary{
			Subject:  ev.Subject,
			Tables:   BookedTables([]entities.CalendarEvent{ev}, s.cfg.Tables),
			Location: ev.Location,
			Start:    ev.Start.In(s.cfg.Location()),
			End:      ev.End.In(s.cfg.Location()),
		})
	}
	list.Total = len(list.Reservations)
	return list, nil
}

// Slots lists the bookable start times of a date.
func (s *ReservationService) Slots(date string) (*entities.SlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidRequest, date)
	}
	slots := s.cfg.Slots(day)
	if slots == nil {
		slots = []string{}
	}
	return &entities.SlotsResponse{Date: date, Closed: !s.cfg.IsOpen(day.Weekday()), Slots: slots}, nil
}

// BookedTables returns the catalog tables referenced by the events, in
// catalog order. A table is referenced when its id is one of the event's
// categories or a whole word of its subject or location.
func BookedTables(events []entities.CalendarEvent, catalog []restaurant.Table) []string {
	booked := make([]string, 0)
	for _, t := range catalog {
		for _, ev := range events {
			if references(ev, t.ID) {
				booked = append(booked, t.ID)
				break
			}
		}
	}
	return booked
}

func references(ev entities.CalendarEvent, id string) bool {
	for _, c := range ev.Categories {
		if strings.TrimSpace(c) == id {
			return true
		}
	}
	return slices.Contains(words(ev.Subject), id) || slices.Contains(words(ev.Location), id)
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
