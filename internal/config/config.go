package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderGraph    = "graph"
	ProviderPostgres = "postgres"
	ProviderSendGrid = "sendgrid"
	ProviderNone     = "none"
)

type GraphConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	BaseURL      string
	Mailbox      string
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Enabled reports whether all Twilio credentials are present.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

type AdminConfig struct {
	Email        string
	PasswordHash string
	JWTSecret    string
}

// Enabled reports whether the admin endpoints can be mounted.
func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.PasswordHash != "" && a.JWTSecret != ""
}

type TelemetryConfig struct {
	Enabled        bool
	Endpoint       string
	ServiceName    string
	ServiceVersion string
}

// Config is the server configuration, read from the environment.
type Config struct {
	Port             string
	Env              string
	CalendarProvider string
	MailProvider     string
	DatabaseURL      string

	Graph     GraphConfig
	SendGrid  SendGridConfig
	Twilio    TwilioConfig
	Admin     AdminConfig
	Telemetry TelemetryConfig
}

func (c Config) Development() bool { return c.Env == "development" }

func FromEnv() (Config, error) {
	cfg := Config{
		Port:             getenv("PORT", "8080"),
		Env:              getenv("ENV", "production"),
		CalendarProvider: strings.ToLower(getenv("CALENDAR_PROVIDER", ProviderGraph)),
		MailProvider:     strings.ToLower(getenv("MAIL_PROVIDER", ProviderGraph)),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Graph: GraphConfig{
			TenantID:     strings.TrimSpace(os.Getenv("AZURE_TENANT_ID")),
			ClientID:     strings.TrimSpace(os.Getenv("AZURE_CLIENT_ID")),
			ClientSecret: strings.TrimSpace(os.Getenv("AZURE_CLIENT_SECRET")),
			BaseURL:      getenv("GRAPH_BASE_URL", "https://graph.microsoft.com/v1.0"),
			Mailbox:      getenv("RESTAURANT_MAILBOX", "wirtshaus@metzenhof.at"),
		},
		SendGrid: SendGridConfig{
			APIKey:    strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
			FromEmail: strings.TrimSpace(os.Getenv("SENDGRID_FROM_EMAIL")),
			FromName:  getenv("SENDGRID_FROM_NAME", "Wirtshaus Metzenhof"),
		},
		Twilio: TwilioConfig{
			AccountSID: strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
			AuthToken:  strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
			FromNumber: strings.TrimSpace(os.Getenv("TWILIO_FROM_NUMBER")),
		},
		Admin: AdminConfig{
			Email:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			PasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
			JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		},
		Telemetry: TelemetryConfig{
			Enabled:        isTrue(os.Getenv("ENABLE_TELEMETRY")),
			Endpoint:       strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
			ServiceName:    getenv("OTEL_SERVICE_NAME", "metzenhof-booking"),
			ServiceVersion: getenv("OTEL_SERVICE_VERSION", "dev"),
		},
	}

	switch cfg.CalendarProvider {
	case ProviderGraph:
		if err := cfg.Graph.requireCredentials(); err != nil {
			return cfg, fmt.Errorf("CALENDAR_PROVIDER=graph: %w", err)
		}
	case ProviderPostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("CALENDAR_PROVIDER=postgres: DATABASE_URL is required")
		}
	default:
		return cfg, fmt.Errorf("unknown CALENDAR_PROVIDER %q", cfg.CalendarProvider)
	}

	switch cfg.MailProvider {
	case ProviderGraph:
		if err := cfg.Graph.requireCredentials(); err != nil {
			return cfg, fmt.Errorf("MAIL_PROVIDER=graph: %w", err)
		}
	case ProviderSendGrid:
		if cfg.SendGrid.APIKey == "" || cfg.SendGrid.FromEmail == "" {
			return cfg, fmt.Errorf("MAIL_PROVIDER=sendgrid: SENDGRID_API_KEY and SENDGRID_FROM_EMAIL are required")
		}
	case ProviderNone:
	default:
		return cfg, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}

	return cfg, nil
}

func (g GraphConfig) requireCredentials() error {
	if g.TenantID == "" || g.ClientID == "" || g.ClientSecret == "" {
		return fmt.Errorf("AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET are required")
	}
	return nil
}

// TokenURL is the Azure AD client-credentials endpoint for the tenant.
func (g GraphConfig) TokenURL() string {
	return fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", g.TenantID)
}

// ClientConfig configures the booking client (bookctl).
type ClientConfig struct {
	APIURL          string
	ConfirmationURL string
}

func ClientFromEnv() ClientConfig {
	return ClientConfig{
		APIURL:          strings.TrimRight(getenv("BOOKING_API_URL", "http://localhost:8080/api"), "/"),
		ConfirmationURL: getenv("CONFIRMATION_URL", "confirmation.html"),
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func isTrue(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1"
}
