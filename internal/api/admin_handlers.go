package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"metzenhof/internal/auth"
	apierrors "metzenhof/internal/errors"
	"metzenhof/internal/service"
)

type AdminHandler struct {
	Service  BookingService
	Location *time.Location
}

func NewAdminHandler(svc BookingService, loc *time.Location) *AdminHandler {
	return &AdminHandler{Service: svc, Location: loc}
}

// ListReservations defaults to today in the restaurant's time zone when no
// date is given.
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.Location).Format("2006-01-02")
	}
	list, err := h.Service.ListReservations(r.Context(), date)
	if errors.Is(err, service.ErrInvalidRequest) {
		apierrors.Write(w, apierrors.ErrBadRequest("Ungültiges Datum").WithDetail(err.Error()))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("admin", auth.AdminEmail(r.Context())).Msg("list reservations failed")
		apierrors.Write(w, apierrors.ErrInternal("Kalender nicht erreichbar").WithDetail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, list)
}
