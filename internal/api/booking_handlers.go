package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"metzenhof/internal/entities"
	apierrors "metzenhof/internal/errors"
	"metzenhof/internal/service"
)

type BookingHandler struct {
	Service BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	clock := r.URL.Query().Get("time")
	if date == "" || clock == "" {
		apierrors.Write(w, apierrors.ErrBadRequest("Datum und Uhrzeit sind erforderlich"))
		return
	}

	snap, err := h.Service.CheckAvailability(r.Context(), date, clock)
	if errors.Is(err, service.ErrInvalidRequest) {
		apierrors.Write(w, apierrors.ErrBadRequest("Ungültiges Datum oder Uhrzeit").WithDetail(err.Error()))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("date", date).Str("time", clock).Msg("availability check failed")
		apierrors.Write(w, apierrors.ErrInternal("Interner Serverfehler").WithDetail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.Write(w, apierrors.ErrBadRequest("Ungültige Anfrage").WithDetail(err.Error()))
		return
	}

	resp, err := h.Service.CreateBooking(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		apierrors.Write(w, apierrors.ErrBadRequest("Alle Pflichtfelder müssen ausgefüllt sein").WithDetail(err.Error()))
		return
	case errors.Is(err, service.ErrUnknownTable):
		apierrors.Write(w, apierrors.ErrBadRequest("Unbekannter Tisch").WithDetail(req.Table))
		return
	case err != nil:
		log.Error().Err(err).Str("table", req.Table).Msg("create booking failed")
		apierrors.Write(w, apierrors.ErrInternal("Reservierung konnte nicht erstellt werden").WithDetail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Slots(r.URL.Query().Get("date"))
	if err != nil {
		apierrors.Write(w, apierrors.ErrBadRequest("Ungültiges Datum").WithDetail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
