package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Development gets a console
// writer on stderr, everything else JSON on stdout.
func Setup(service string, development bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", service).Logger()
}

// AccessLog wraps h with a gorilla access logger that writes through zerolog.
func AccessLog(h http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
		ev := log.Info()
		if p.StatusCode >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", p.Request.Method).
			Str("path", p.URL.Path).
			Str("query", p.URL.RawQuery).
			Int("status", p.StatusCode).
			Int("size", p.Size).
			Str("request_id", p.Request.Header.Get(RequestIDHeader)).
			Dur("latency", time.Since(p.TimeStamp)).
			Msg("request")
	})
}

// Recovery turns handler panics into 500 responses and logs them.
func Recovery(h http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)(h)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error().Interface("panic", v).Msg("recovered from panic")
}
