package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source kinds accepted in CATALOG_SOURCE.
const (
	SourceFile    = "file"
	SourceMongoDB = "mongodb"
	SourceSheets  = "sheets"
	SourceRemote  = "remote"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Sheets  SheetsConfig
	MongoDB MongoDBConfig
	Remote  RemoteConfig
	Refresh RefreshConfig
	Cards   CardsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// CatalogConfig selects where shoe records come from.
type CatalogConfig struct {
	Source string
	File   string
	Watch  bool
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	Range           string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI        string
	DBName     string
	Collection string
}

// RemoteConfig points at an upstream JSON catalog.
type RemoteConfig struct {
	BaseURL string
	Token   string
}

// RefreshConfig holds scheduler-related settings.
type RefreshConfig struct {
	CronSchedule string
}

// CardsConfig tunes card rendering.
type CardsConfig struct {
	RecencyWindow time.Duration
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

	window, err := time.ParseDuration(getenvWithDefault("RECENCY_WINDOW", "720h"))
	if err != nil {
		return nil, fmt.Errorf("RECENCY_WINDOW must be a duration: %w", err)
	}

	watch, err := strconv.ParseBool(getenvWithDefault("CATALOG_WATCH", "true"))
	if err != nil {
		return nil, fmt.Errorf("CATALOG_WATCH must be a boolean: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Source: getenvWithDefault("CATALOG_SOURCE", SourceFile),
			File:   getenvWithDefault("CATALOG_FILE", "shoes.yaml"),
			Watch:  watch,
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			Range:           getenvWithDefault("SHEETS_RANGE", "Shoes!A:G"),
		},
		MongoDB: MongoDBConfig{
			URI:        os.Getenv("MONGODB_URI"),
			DBName:     getenvWithDefault("MONGODB_DB_NAME", "shoecard"),
			Collection: getenvWithDefault("MONGODB_COLLECTION", "shoes"),
		},
		Remote: RemoteConfig{
			BaseURL: os.Getenv("REMOTE_CATALOG_URL"),
			Token:   os.Getenv("REMOTE_CATALOG_TOKEN"),
		},
		Refresh: RefreshConfig{
			CronSchedule: getenvWithDefault("REFRESH_CRON_SCHEDULE", "*/15 * * * *"),
		},
		Cards: CardsConfig{
			RecencyWindow: window,
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

	if c.Cards.RecencyWindow <= 0 {
		return errors.New("RECENCY_WINDOW must be positive")
	}

	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.File == "" {
			return errors.New("CATALOG_FILE must be provided")
		}
	case SourceMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	case SourceSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
		}
	case SourceRemote:
		if c.Remote.BaseURL == "" {
			return errors.New("REMOTE_CATALOG_URL must be provided")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
