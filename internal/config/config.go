package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Session storage (optional; in-memory when empty)
	RedisURL string

	// Telegram
	TelegramToken   string
	ModeratorChatID string // the single privileged chat identity

	// Google Sheets FAQ source of truth
	SheetID         string
	SheetRange      string // data range, header row excluded
	CredentialsFile string // service account JSON key

	// Resolver
	FuzzyThreshold int // fuzzy match must score strictly above this (0-100)

	// FAQ reload schedule
	ReloadInterval time.Duration

	// OIDC (moderator dashboard)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Dashboard access: comma-separated moderator emails
	DashboardEmails string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// SMTP (optional moderator email notifications)
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFrom       string
	ModeratorEmail string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/faqbot?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),

		TelegramToken:   getEnv("TELEGRAM_TOKEN", ""),
		ModeratorChatID: getEnv("MODERATOR_CHAT_ID", ""),

		SheetID:         getEnv("SHEET_ID", ""),
		SheetRange:      getEnv("SHEET_RANGE", "Sheet1!A2:D"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "service-account.json"),

		FuzzyThreshold: getEnvInt("FUZZY_THRESHOLD", 75),
		ReloadInterval: getEnvDuration("RELOAD_INTERVAL", 6*time.Hour),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:8080/auth/callback"),
		DashboardEmails:  getEnv("DASHBOARD_EMAILS", ""),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:       getEnv("SMTP_FROM", ""),
		ModeratorEmail: getEnv("MODERATOR_EMAIL", ""),
	}
}

// Validate checks that required credentials and identifiers are present.
// A failure here is fatal at startup.
func (c *Config) Validate() error {
	var missing []string
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.ModeratorChatID == "" {
		missing = append(missing, "MODERATOR_CHAT_ID")
	}
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.SheetID == "" {
		missing = append(missing, "SHEET_ID")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return errors.New("FUZZY_THRESHOLD must be between 0 and 100")
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.ModeratorEmail != ""
}

// IsDashboardEnabled returns true if the OIDC moderator dashboard is configured.
func (c *Config) IsDashboardEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// ModeratorEmails returns the parsed dashboard allow-list.
func (c *Config) ModeratorEmails() []string {
	if c.DashboardEmails == "" {
		return nil
	}
	parts := strings.Split(c.DashboardEmails, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.ToLower(strings.TrimSpace(p)); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
