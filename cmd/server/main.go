package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"metzenhof/internal/api"
	"metzenhof/internal/config"
	"metzenhof/internal/db"
	"metzenhof/internal/graph"
	"metzenhof/internal/logger"
	"metzenhof/internal/repository"
	"metzenhof/internal/restaurant"
	"metzenhof/internal/service"
	"metzenhof/internal/telemetry"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.FromEnv()
	logger.Setup("metzenhof-booking", cfg.Development())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, tracing, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry disabled")
	}
	defer shutdownTracing(context.Background())
	log.Info().Bool("tracing", tracing).Msg("telemetry initialised")

	rc := restaurant.Metzenhof()
	rc.Mailbox = cfg.Graph.Mailbox
	if err := rc.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid restaurant configuration")
	}

	var gc *graph.Client
	if cfg.CalendarProvider == config.ProviderGraph || cfg.MailProvider == config.ProviderGraph {
		gc = graph.NewWithClientCredentials(context.Background(), cfg.Graph.TokenURL(),
			cfg.Graph.ClientID, cfg.Graph.ClientSecret, cfg.Graph.BaseURL, cfg.Graph.Mailbox)
	}

	var calendar repository.CalendarRepository
	switch cfg.CalendarProvider {
	case config.ProviderPostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database")
		}
		defer conn.Close()
		if err := db.Migrate(ctx, conn); err != nil {
			log.Fatal().Err(err).Msg("database migration")
		}
		calendar = repository.NewReservationRepository(conn)
	default:
		calendar = repository.NewGraphCalendarRepository(gc, rc.TimeZone)
	}

	var mailer service.Mailer
	switch cfg.MailProvider {
	case config.ProviderSendGrid:
		mailer = service.NewSendGridMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	case config.ProviderNone:
		mailer = service.LogMailer{}
	default:
		mailer = gc
	}

	var sms service.SMSSender
	if cfg.Twilio.Enabled() {
		sms = service.NewTwilioSMSSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	}

	bookings := service.NewReservationService(rc, calendar, service.NewSenderService(mailer, sms))

	var adminAuth service.AdminAuthService
	if cfg.Admin.Enabled() {
		adminAuth = service.NewAdminAuthService(
			repository.NewStaticAdminRepository(cfg.Admin.Email, cfg.Admin.PasswordHash),
			cfg.Admin.JWTSecret,
		)
	} else {
		log.Info().Msg("admin endpoints disabled, ADMIN_EMAIL/ADMIN_PASSWORD_HASH/JWT_SECRET not set")
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: api.NewRouter(api.RouterOptions{
			Bookings: bookings,
			Auth:     adminAuth,
			Location: rc.Location(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).
			Str("calendar", cfg.CalendarProvider).
			Str("mail", cfg.MailProvider).
			Bool("sms", sms != nil).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
