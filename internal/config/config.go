package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Compliance thresholds (shared by evaluator and dashboard)
	Compliance ComplianceConfig

	// SMTP fallback settings for notification dispatch
	SMTP SMTPConfig

	// Notification dispatch configuration
	Notify NotifyConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// ComplianceConfig holds the lookahead windows used for classification.
// Both the per-record evaluator and the dashboard counts read the same
// values so the two can never drift apart.
type ComplianceConfig struct {
	DueSoonWindowDays       int
	UpcomingShiftWindowDays int
}

// SMTPConfig holds fallback mail transport settings. Callers may override
// host/port/username/secret per dispatch request; nothing here is ever
// written to the database.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Secret   string
}

// NotifyConfig holds notification batch dispatch settings
type NotifyConfig struct {
	MaxConcurrentSends int
	SendTimeout        time.Duration
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetime:    time.Duration(getEnvAsInt("DATABASE_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		Compliance: ComplianceConfig{
			DueSoonWindowDays:       getEnvAsInt("DUE_SOON_WINDOW_DAYS", 60),
			UpcomingShiftWindowDays: getEnvAsInt("UPCOMING_SHIFT_WINDOW_DAYS", 7),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Secret:   getEnv("SMTP_SECRET", ""),
		},
		Notify: NotifyConfig{
			MaxConcurrentSends: getEnvAsInt("NOTIFY_MAX_CONCURRENT_SENDS", 4),
			SendTimeout:        time.Duration(getEnvAsInt("NOTIFY_SEND_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Compliance.DueSoonWindowDays < 0 {
		return fmt.Errorf("DUE_SOON_WINDOW_DAYS must not be negative")
	}

	if c.Compliance.UpcomingShiftWindowDays < 0 {
		return fmt.Errorf("UPCOMING_SHIFT_WINDOW_DAYS must not be negative")
	}

	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port number")
	}

	if c.Notify.MaxConcurrentSends < 1 {
		return fmt.Errorf("NOTIFY_MAX_CONCURRENT_SENDS must be at least 1")
	}

	return nil
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a fallback default
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsSlice gets an environment variable as a comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
