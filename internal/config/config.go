package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Console  ConsoleConfig
	Leave    LeaveConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// UpstreamConfig points at the HR REST API every record lives in.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the console's own session cookie settings.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// ConsoleConfig holds the listing behavior knobs.
type ConsoleConfig struct {
	OrgEmailDomain string
	PageSize       int
	Debounce       time.Duration
	MinSuggestLen  int
}

// LeaveConfig holds the fixed annual entitlements.
type LeaveConfig struct {
	CasualDays int
	SickDays   int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; everything can come
	// from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Timeout: upstreamTimeout,
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.Session = SessionConfig{
		Secret: getEnv("SESSION_SECRET", ""),
		TTL:    sessionTTL,
	}

	pageSize, err := strconv.Atoi(getEnv("LISTING_PAGE_SIZE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LISTING_PAGE_SIZE: %w", err)
	}

	debounce, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE: %w", err)
	}

	minSuggestLen, err := strconv.Atoi(getEnv("SUGGESTION_MIN_LENGTH", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUGGESTION_MIN_LENGTH: %w", err)
	}

	config.Console = ConsoleConfig{
		OrgEmailDomain: getEnv("ORG_EMAIL_DOMAIN", "@bashyamgroup.com"),
		PageSize:       pageSize,
		Debounce:       debounce,
		MinSuggestLen:  minSuggestLen,
	}

	casualDays, err := strconv.Atoi(getEnv("LEAVE_CASUAL_DAYS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_CASUAL_DAYS: %w", err)
	}

	sickDays, err := strconv.Atoi(getEnv("LEAVE_SICK_DAYS", "16"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_SICK_DAYS: %w", err)
	}

	config.Leave = LeaveConfig{
		CasualDays: casualDays,
		SickDays:   sickDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if !strings.HasPrefix(c.Console.OrgEmailDomain, "@") {
		return fmt.Errorf("ORG_EMAIL_DOMAIN must start with @")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
