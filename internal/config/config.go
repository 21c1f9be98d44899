package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	FreteAPI FreteAPIConfig
	Sheets   SheetsConfig
	Closing  ClosingConfig
	MongoDB  MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// FreteAPIConfig contains credentials and options for the legacy freight API
// that owns the four source collections.
type FreteAPIConfig struct {
	BaseURL  string
	Token    string
	PageSize int
	Timeout  time.Duration
}

// SheetsConfig contains configuration required to export period reports to
// Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ClosingConfig holds the scheduled closing-snapshot settings.
type ClosingConfig struct {
	CronSchedule string
	Timezone     string
	Granularity  string
}

// MongoDBConfig holds settings for the closing-snapshot store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		FreteAPI: FreteAPIConfig{
			BaseURL:  os.Getenv("FRETEAPI_BASE_URL"),
			Token:    os.Getenv("FRETEAPI_TOKEN"),
			PageSize: getenvIntWithDefault("FRETEAPI_PAGE_SIZE", 20),
			Timeout:  time.Duration(getenvIntWithDefault("FRETEAPI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
		Closing: ClosingConfig{
			CronSchedule: getenvWithDefault("CLOSING_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Cuiaba"),
			Granularity:  getenvWithDefault("CLOSING_GRANULARITY", "mensal"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "fretelog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.FreteAPI.BaseURL == "" {
		return errors.New("FRETEAPI_BASE_URL must be provided")
	}
	if c.FreteAPI.PageSize <= 0 {
		return errors.New("FRETEAPI_PAGE_SIZE must be positive")
	}

	// Sheets export is optional; when one of the two values is set, both are
	// required.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_REPORT_ID must be provided together")
	}

	if c.Closing.CronSchedule == "" {
		return errors.New("CLOSING_CRON_SCHEDULE must be provided")
	}
	if c.Closing.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
