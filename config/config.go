package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

type Config struct {
	Port     string
	LogLevel string
	// Notification delivery
	MailTo          string
	MailFrom        string
	MailSimulate    bool
	MailSimulateDir string
	MailProvider    string // smtp or resend
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Resend Configuration
	ResendAPIKey string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; missing .env is ignored
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Notification delivery
		MailTo:          getEnv("MAIL_TO", "no-reply@example.org"),
		MailFrom:        getEnv("MAIL_FROM", "no-reply@example.org"),
		MailSimulate:    getEnvBool("MAIL_SIMULATE", false),
		MailSimulateDir: getEnv("MAIL_SIMULATE_DIR", "sent-emails"),
		MailProvider:    strings.ToLower(getEnv("MAIL_PROVIDER", ProviderSMTP)),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Resend Configuration
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
	}

	switch cfg.MailProvider {
	case ProviderSMTP, ProviderResend:
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q (want %q or %q)", cfg.MailProvider, ProviderSMTP, ProviderResend)
	}

	if !cfg.MailSimulate && cfg.MailProvider == ProviderResend && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Notifications will fail to send.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
