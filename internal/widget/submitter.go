// Package widget drives one booking attempt from the filled-in form to a
// confirmation.
package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"metzenhof/internal/client"
	"metzenhof/internal/entities"
	"metzenhof/internal/restaurant"
)

// Backend is the booking API as the form sees it.
type Backend interface {
	CheckAvailability(ctx context.Context, date, clock string) client.AvailabilityResult
	CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error)
}

type Submitter struct {
	cfg     restaurant.Config
	backend Backend

	// OnStage, when set, is called on every stage change.
	OnStage func(Stage)

	now     func() time.Time
	newCode func() (string, error)
	stage   Stage
}

func NewSubmitter(cfg restaurant.Config, backend Backend) *Submitter {
	return &Submitter{
		cfg:     cfg,
		backend: backend,
		now:     time.Now,
		newCode: restaurant.NewConfirmationCode,
	}
}

func (s *Submitter) Stage() Stage { return s.stage }

func (s *Submitter) set(st Stage) {
	s.stage = st
	if s.OnStage != nil {
		s.OnStage(st)
	}
}

// Submit runs one attempt. It returns a *ValidationError (stage back to
// Idle) or ErrNoTableAvailable (Rejected); every other outcome is a
// confirmation, flagged Demo when the backend did not confirm.
func (s *Submitter) Submit(ctx context.Context, f Form) (*Confirmation, error) {
	s.set(Validating)
	if err := Validate(f, s.cfg, s.now().In(s.cfg.Location())); err != nil {
		s.set(Idle)
		return nil, err
	}

	s.set(CheckingAvailability)
	avail := s.backend.CheckAvailability(ctx, f.Date, f.Time)
	table, ok := restaurant.SelectTable(f.Guests, avail.BookedTables(), s.cfg.Tables)
	if !ok {
		s.set(Rejected)
		return nil, ErrNoTableAvailable
	}

	s.set(Submitting)
	conf := &Confirmation{
		Date:   f.Date,
		Time:   f.Time,
		Guests: f.Guests,
		Name:   f.FirstName + " " + f.LastName,
		Email:  f.Email,
		Table:  table,
	}
	resp, err := s.backend.CreateBooking(ctx, f.bookingRequest(table))
	if err == nil && (resp == nil || resp.ConfirmationCode == "") {
		err = errors.New("booking api returned no confirmation code")
	}
	if err == nil {
		conf.Code = resp.ConfirmationCode
		s.set(Success)
		return conf, nil
	}

	log.Error().Err(err).Str("table", table).Str("date", f.Date).Str("time", f.Time).Msg("booking not confirmed by backend, using demo confirmation")
	code, cerr := s.newCode()
	if cerr != nil {
		s.set(Rejected)
		return nil, fmt.Errorf("generate demo confirmation code: %w", cerr)
	}
	conf.Code = code
	conf.Demo = true
	conf.Cause = err
	s.set(DemoFallback)
	return conf, nil
}
