package api

import (
	"context"

	"metzenhof/internal/entities"
)

// BookingService is the reservation logic behind the public and admin
// endpoints.
type BookingService interface {
	CheckAvailability(ctx context.Context, date, clock string) (*entities.AvailabilitySnapshot, error)
	CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error)
	ListReservations(ctx context.Context, date string) (*entities.ReservationsList, error)
	Slots(date string) (*entities.SlotsResponse, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
