package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service, read from the environment.
type Config struct {
	Mongo     MongoConfig
	Server    ServerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// RateLimitConfig is the per-client quota: Requests per Window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type LoggerConfig struct {
	Level string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	cfg := &Config{
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", ""),
			Database: getEnv("MONGODB_DATABASE", "ordermgmt"),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 3000),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			TTL:        getEnvAsDuration("CACHE_TTL", 60*time.Second),
			MaxEntries: getEnvAsInt("CACHE_MAX_ENTRIES", 100),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 10),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cfg.validate: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE must not be empty")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be a positive integer")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
