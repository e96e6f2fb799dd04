// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	AWS         AWSConfig
	Scraper     ScraperConfig
	Tagging     TaggingConfig
	Upload      UploadConfig
	I18n        I18nConfig
	CORS        CORSConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
	// Requests per second allowed per client IP; 0 disables the limiter.
	RateLimitRPS   float64
	RateLimitBurst int
	// Imports allowed per minute per client IP; 0 disables the limiter.
	UploadsPerMinute int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	SSLMode         string
	ConnectTimeout  int
	ApplicationName string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxLifetime     int
	LogLevel        string
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	ArchivePrefix   string
}

type ScraperConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type TaggingConfig struct {
	// Optional YAML file replacing the built-in keyword dictionary.
	KeywordsPath string
}

type UploadConfig struct {
	MaxBytes int64
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:      getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout:     getEnvAsInt("SERVER_WRITE_TIMEOUT", 120),
			IdleTimeout:      getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			RateLimitRPS:     getEnvAsFloat("RATE_LIMIT_RPS", 10),
			RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 20),
			UploadsPerMinute: getEnvAsInt("UPLOADS_PER_MINUTE", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "127.0.0.1"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "prodinfo"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			ConnectTimeout:  getEnvAsInt("DB_CONNECT_TIMEOUT", 10),
			ApplicationName: getEnv("DB_APPLICATION_NAME", "krownebase"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:     getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:        getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", defaultJWTSecret),
			Issuer:    getEnv("JWT_ISSUER", "krownebase"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "krownebase-imports"),
			ArchivePrefix:   getEnv("AWS_ARCHIVE_PREFIX", "imports"),
		},
		Scraper: ScraperConfig{
			BaseURL:  strings.TrimRight(getEnv("SCRAPER_BASE_URL", "https://krowne.com"), "/"),
			Timeout:  time.Duration(getEnvAsInt("SCRAPER_TIMEOUT_SECONDS", 20)) * time.Second,
			CacheTTL: time.Duration(getEnvAsInt("SCRAPER_CACHE_TTL_MINUTES", 60)) * time.Minute,
		},
		Tagging: TaggingConfig{
			KeywordsPath: getEnv("TAG_KEYWORDS_PATH", ""),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvAsInt("UPLOAD_MAX_MB", 20)) * 1024 * 1024,
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == defaultJWTSecret && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload size limit must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
