// Package config loads service configuration from the environment, with
// optional .env support for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	DatabaseURL string
	SQLitePath  string
	MaxConns    int

	// Redis
	RedisURL string

	// RabbitMQ
	RabbitMQURL string

	// Outbox
	OutboxPollInterval    time.Duration
	OutboxBatchSize       int
	OutboxMaxRetries      int
	OutboxRetention       time.Duration
	OutboxCleanupInterval time.Duration

	// Notifications
	NotifyFailureThreshold int
	NotifyOpenTimeout      time.Duration
	NotifyTimeout          time.Duration

	// Objections
	ObjectionWindowDays int

	// Worker
	WorkerHealthAddr string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("LANDADMIN_SQLITE_PATH", ""),
		MaxConns:    getIntEnv("DATABASE_MAX_CONNS", 10),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		OutboxPollInterval:    getDurationEnv("OUTBOX_POLL_INTERVAL", 250*time.Millisecond),
		OutboxBatchSize:       getIntEnv("OUTBOX_BATCH_SIZE", 100),
		OutboxMaxRetries:      getIntEnv("OUTBOX_MAX_RETRIES", 5),
		OutboxRetention:       getDurationEnv("OUTBOX_RETENTION", 14*24*time.Hour),
		OutboxCleanupInterval: getDurationEnv("OUTBOX_CLEANUP_INTERVAL", 24*time.Hour),

		NotifyFailureThreshold: getIntEnv("NOTIFY_FAILURE_THRESHOLD", 5),
		NotifyOpenTimeout:      getDurationEnv("NOTIFY_OPEN_TIMEOUT", 30*time.Second),
		NotifyTimeout:          getDurationEnv("NOTIFY_TIMEOUT", 5*time.Second),

		ObjectionWindowDays: getIntEnv("OBJECTION_WINDOW_DAYS", 30),

		WorkerHealthAddr: getEnv("WORKER_HEALTH_ADDR", "0.0.0.0:8081"),
	}, nil
}

// IsDevelopment reports a non-production environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
