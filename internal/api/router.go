package api

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"metzenhof/internal/auth"
	"metzenhof/internal/logger"
	"metzenhof/internal/service"
)

type RouterOptions struct {
	Bookings BookingService
	// Auth is nil when no admin account is configured; the admin routes
	// are then not mounted.
	Auth     service.AdminAuthService
	Location *time.Location
}

// cors answers preflight requests from any origin with 204 and lets the
// endpoint's own method through.
func cors(method string, h http.HandlerFunc) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{method, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)(h)
}

func NewRouter(opts RouterOptions) http.Handler {
	bookings := NewBookingHandler(opts.Bookings)

	r := mux.NewRouter()
	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	public := r.PathPrefix("/api").Subrouter()
	public.Handle("/check-availability", cors(http.MethodGet, bookings.CheckAvailability)).Methods(http.MethodGet, http.MethodOptions)
	public.Handle("/create-booking", cors(http.MethodPost, bookings.CreateBooking)).Methods(http.MethodPost, http.MethodOptions)
	public.Handle("/slots", cors(http.MethodGet, bookings.Slots)).Methods(http.MethodGet, http.MethodOptions)

	if opts.Auth != nil {
		login := NewAdminAuthHandler(opts.Auth)
		r.HandleFunc("/admin/login", login.Login).Methods(http.MethodPost)

		admin := r.PathPrefix("/admin").Subrouter()
		admin.Use(auth.AdminAuthMiddleware(opts.Auth))
		admin.HandleFunc("/bookings", NewAdminHandler(opts.Bookings, opts.Location).ListReservations).Methods(http.MethodGet)
	}

	return logger.RequestID(logger.AccessLog(logger.Recovery(r)))
}
