package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

const (
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultJSearchRate     = 1.0
	defaultAdzunaRate      = 25
	defaultHTTPRate        = 10.0
	defaultHTTPBurst       = 20
	defaultProviderTimeout = 10 * time.Second
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	LogFormat string // json or console
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 8080

	HTTP struct {
		RatePerSecond float64 // per client on /mcp/stream; zero disables
		Burst         int
	}

	JSearch struct {
		APIKey        string
		RatePerSecond float64
	}
	Adzuna struct {
		AppID         string
		AppKey        string
		RatePerMinute int
	}
	Gemini struct {
		APIKey string
		Model  string
	}
	Sheets struct {
		CredentialsPath string
	}

	ProviderTimeout time.Duration
}

// Credentials returns provider credentials as read at startup
func (c Config) Credentials() domain.ProviderCredentials {
	return domain.ProviderCredentials{
		APIKey: c.JSearch.APIKey,
		AppID:  c.Adzuna.AppID,
		AppKey: c.Adzuna.AppKey,
	}
}

// Load populates config from environment variables, reading .env first when present.
// Every setting is optional.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds Config using getenv for lookups
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel:        "info",
		LogFormat:       "json",
		Host:            "0.0.0.0",
		Port:            "8080",
		ProviderTimeout: defaultProviderTimeout,
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := getenv("LOG_FORMAT"); v != "" {
		if v != "json" && v != "console" {
			return cfg, fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", v)
		}
		cfg.LogFormat = v
	}

	if v := getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.HTTP.RatePerSecond = defaultHTTPRate
	if v := getenv("HTTP_RATE_LIMIT"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			return cfg, fmt.Errorf("config: HTTP_RATE_LIMIT must be a non-negative number, got %q", v)
		}
		cfg.HTTP.RatePerSecond = r
	}
	cfg.HTTP.Burst = defaultHTTPBurst
	if v := getenv("HTTP_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("config: HTTP_RATE_BURST must be a positive integer, got %q", v)
		}
		cfg.HTTP.Burst = n
	}

	cfg.JSearch.APIKey = strings.TrimSpace(getenv("RAPIDAPI_KEY"))
	cfg.JSearch.RatePerSecond = defaultJSearchRate
	if v := getenv("JSEARCH_RATE_LIMIT"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return cfg, fmt.Errorf("config: JSEARCH_RATE_LIMIT must be a non-negative number, got %q", v)
		}
		cfg.JSearch.RatePerSecond = rate
	}

	cfg.Adzuna.AppID = strings.TrimSpace(getenv("ADZUNA_APP_ID"))
	cfg.Adzuna.AppKey = strings.TrimSpace(getenv("ADZUNA_APP_KEY"))
	cfg.Adzuna.RatePerMinute = defaultAdzunaRate
	if v := getenv("ADZUNA_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("config: ADZUNA_RATE_PER_MINUTE must be a non-negative integer, got %q", v)
		}
		cfg.Adzuna.RatePerMinute = n
	}

	cfg.Gemini.APIKey = strings.TrimSpace(getenv("GEMINI_API_KEY"))
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = strings.TrimSpace(getenv("GOOGLE_API_KEY"))
	}
	cfg.Gemini.Model = defaultGeminiModel
	if v := getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}

	cfg.Sheets.CredentialsPath = getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	if v := getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("config: PROVIDER_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.ProviderTimeout = d
	}

	return cfg, nil
}
