package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// AdminEmails is the raw comma-separated allow-list of admin emails.
	AdminEmails string

	// WhatsAppPhone is the business number used for every wa.me deep link.
	WhatsAppPhone string

	DB        DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig contains object-storage configuration for product images.
type StorageConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// RateLimitConfig controls the anonymous inquiry-submission throttle.
type RateLimitConfig struct {
	InquiryLimit  int
	InquiryWindow time.Duration
}

// AuthConfigured reports whether session authentication can operate. When the
// secret is absent the auth endpoints answer with a "not configured" error
// instead of attempting work that would fail unpredictably.
func (c *Config) AuthConfigured() bool {
	return c.JWTSecret != ""
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Admin allow-list and business contact
	cfg.AdminEmails = getEnv("ADMIN_EMAILS", "")
	cfg.WhatsAppPhone = getEnv("WHATSAPP_PHONE", "50240337845")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Object storage for product images
	cfg.Storage = StorageConfig{
		Region:          getEnv("STORAGE_REGION", "us-east-1"),
		Bucket:          getEnv("STORAGE_BUCKET", "product-images"),
		AccessKeyID:     getEnv("STORAGE_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("STORAGE_SECRET_ACCESS_KEY", ""),
	}

	// Inquiry submission throttle
	cfg.RateLimit.InquiryLimit = getEnvInt("INQUIRY_RATE_LIMIT", 5)
	var err error
	if cfg.RateLimit.InquiryWindow, err = parseDurationEnv("INQUIRY_RATE_WINDOW", "1m"); err != nil {
		return nil, fmt.Errorf("invalid INQUIRY_RATE_WINDOW: %w", err)
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	// JWT_SECRET may legitimately be unset: the auth surface then reports
	// itself as not configured instead of failing startup.
	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a
// default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as a
// time.Duration, falling back to the provided default when empty.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
