package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the environment-supplied runtime settings.
type Config struct {
	BotToken         string
	CalendlyAPIToken string
	PublicBaseURL    string
	AdminContact     string
	DatabaseURL      string
	TextsPath        string
	Port             int
}

// Load reads all settings from the environment. Call godotenv.Load
// beforehand if a .env file should participate.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:         os.Getenv("TELEGRAM_BOT_TOKEN"),
		CalendlyAPIToken: os.Getenv("CALENDLY_API_TOKEN"),
		PublicBaseURL:    strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		AdminContact:     os.Getenv("ADMIN_CONTACT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TextsPath:        os.Getenv("TEXTS_PATH"),
		Port:             8080,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 65535 {
			return nil, fmt.Errorf("invalid PORT: %q", raw)
		}
		cfg.Port = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if c.BotToken == "" {
		return fmt.Errorf("config validation failed: TELEGRAM_BOT_TOKEN is not set")
	}
	if c.CalendlyAPIToken == "" {
		return fmt.Errorf("config validation failed: CALENDLY_API_TOKEN is not set")
	}
	return nil
}

// WebhookPath returns the token-scoped webhook route, matching the
// path registered with Telegram.
func (c *Config) WebhookPath() string {
	return "/telegram/webhook/" + c.BotToken
}

// WebhookURL returns the full public webhook URL, or empty when no
// public base URL is configured.
func (c *Config) WebhookURL() string {
	if c.PublicBaseURL == "" {
		return ""
	}
	return c.PublicBaseURL + c.WebhookPath()
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
