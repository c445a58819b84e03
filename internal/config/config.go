package config

import (
	"os"
	"strconv"
	"time"

	"edudesk/internal/errors"
)

// Config represents the complete console configuration.
type Config struct {
	Backend BackendConfig
	Server  ServerConfig
	Report  ReportConfig
	Table   TableConfig
}

// BackendConfig holds REST backend settings.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// MaxPages caps the page loop when fetching an unpaginated export set.
	MaxPages int
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port    string
	GinMode string
}

// ReportConfig holds export and print presentation settings.
type ReportConfig struct {
	Company  string
	Subtitle string
	// Locale for the print header timestamp, e.g. "en_US".
	Locale string
}

// TableConfig holds table engine defaults.
type TableConfig struct {
	DefaultPageSize int
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		return nil, errors.ConfigInvalid("BACKEND_URL is required")
	}

	config := &Config{
		Backend: BackendConfig{
			BaseURL:  baseURL,
			Timeout:  getEnvDurationOrDefault("BACKEND_TIMEOUT", 30*time.Second),
			MaxPages: getEnvIntOrDefault("BACKEND_MAX_PAGES", 100),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Report: ReportConfig{
			Company:  getEnvOrDefault("COMPANY_NAME", "EduDesk"),
			Subtitle: getEnvOrDefault("REPORT_SUBTITLE", "Back Office Report"),
			Locale:   getEnvOrDefault("REPORT_LOCALE", "en_US"),
		},
		Table: TableConfig{
			DefaultPageSize: getEnvIntOrDefault("PAGE_SIZE", 10),
		},
	}

	if config.Table.DefaultPageSize < 1 {
		return nil, errors.ConfigInvalid("PAGE_SIZE must be at least 1")
	}
	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
