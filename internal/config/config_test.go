package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DB_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "prodinfo", cfg.Database.Database)
	assert.Equal(t, int64(20*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 60*time.Minute, cfg.Scraper.CacheTTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SCRAPER_BASE_URL", "https://example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REDIS_ENABLED", "TRUE")
	t.Setenv("UPLOAD_MAX_MB", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "https://example.com", cfg.Scraper.BaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
}

func TestValidateProduction(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		JWT:         JWTConfig{SecretKey: defaultJWTSecret},
		Upload:      UploadConfig{MaxBytes: 1},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.SecretKey = "rotated"
	assert.Error(t, cfg.Validate(), "missing db password")

	cfg.Database.Password = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Database: "prodinfo", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=prodinfo sslmode=disable", d.DSN())

	d.ConnectTimeout = 5
	d.ApplicationName = "pimctl"
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=prodinfo sslmode=disable connect_timeout=5 application_name=pimctl", d.DSN())
}
