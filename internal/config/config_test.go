package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_PORT", "LOG_LEVEL", "CATALOG_SOURCE", "CATALOG_FILE", "CATALOG_WATCH",
	"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID", "SHEETS_RANGE",
	"MONGODB_URI", "MONGODB_DB_NAME", "MONGODB_COLLECTION",
	"REMOTE_CATALOG_URL", "REMOTE_CATALOG_TOKEN",
	"REFRESH_CRON_SCHEDULE", "RECENCY_WINDOW",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		// Setenv registers the restore; unset so godotenv treats the key as absent.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, SourceFile, cfg.Catalog.Source)
	assert.Equal(t, "shoes.yaml", cfg.Catalog.File)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, "Shoes!A:G", cfg.Sheets.Range)
	assert.Equal(t, "shoecard", cfg.MongoDB.DBName)
	assert.Equal(t, "shoes", cfg.MongoDB.Collection)
	assert.Equal(t, "*/15 * * * *", cfg.Refresh.CronSchedule)
	assert.Equal(t, 30*24*time.Hour, cfg.Cards.RecencyWindow)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nCATALOG_SOURCE=remote\nREMOTE_CATALOG_URL=http://catalog.local\nRECENCY_WINDOW=168h\nCATALOG_WATCH=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, SourceRemote, cfg.Catalog.Source)
	assert.Equal(t, "http://catalog.local", cfg.Remote.BaseURL)
	assert.Equal(t, 7*24*time.Hour, cfg.Cards.RecencyWindow)
	assert.False(t, cfg.Catalog.Watch)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECENCY_WINDOW", "a month")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "RECENCY_WINDOW")

	clearEnv(t)
	t.Setenv("CATALOG_WATCH", "sometimes")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "CATALOG_WATCH")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:  ServerConfig{Port: "8080"},
			Catalog: CatalogConfig{Source: SourceFile, File: "shoes.yaml"},
			MongoDB: MongoDBConfig{DBName: "shoecard"},
			Cards:   CardsConfig{RecencyWindow: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid file source", func(*Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
		{"zero window", func(c *Config) { c.Cards.RecencyWindow = 0 }, "RECENCY_WINDOW"},
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }, "CATALOG_SOURCE"},
		{"mongodb without uri", func(c *Config) { c.Catalog.Source = SourceMongoDB }, "MONGODB_URI"},
		{"sheets without credentials", func(c *Config) { c.Catalog.Source = SourceSheets }, "GOOGLE_SHEETS_CREDENTIALS_PATH"},
		{"sheets without id", func(c *Config) {
			c.Catalog.Source = SourceSheets
			c.Sheets.CredentialsPath = "creds.json"
		}, "GOOGLE_SHEET_DATABASE_ID"},
		{"remote without url", func(c *Config) { c.Catalog.Source = SourceRemote }, "REMOTE_CATALOG_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
