// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	App       AppConfig
	Provider  ProviderConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Places    PlacesConfig
	Metrics   MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Caller      bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-search"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// ProviderConfig selects the flights provider and holds the Sky-Scraper connection.
type ProviderConfig struct {
	Name            string        `env:"FLIGHTS_PROVIDER" envDefault:"skyscraper"`
	APIKey          string        `env:"SKY_SCRAPER_API_KEY"`
	APIHost         string        `env:"SKY_SCRAPER_API_HOST" envDefault:"flights-sky.p.rapidapi.com"`
	BaseURL         string        `env:"SKY_SCRAPER_BASE_URL" envDefault:"https://flights-sky.p.rapidapi.com"`
	Timeout         time.Duration `env:"SKY_SCRAPER_TIMEOUT" envDefault:"25s"`
	DefaultCurrency string        `env:"DEFAULT_CURRENCY" envDefault:"USD"`
}

// RateLimitConfig is the client-side budget applied to each upstream endpoint.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"UPSTREAM_RATE_LIMIT_RPS" envDefault:"5"`
	Burst             int     `env:"UPSTREAM_RATE_LIMIT_BURST" envDefault:"10"`
}

// CacheConfig selects the cache store and the TTL of each search cache tier.
type CacheConfig struct {
	Backend     string        `env:"CACHE_BACKEND" envDefault:"memory"`
	ResponseTTL time.Duration `env:"CACHE_RESPONSE_TTL" envDefault:"5m"`
	CurveTTL    time.Duration `env:"CACHE_CURVE_TTL" envDefault:"15m"`
}

// RedisConfig holds the redis connection used when CACHE_BACKEND=redis.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// PlacesConfig holds the airport autocomplete settings.
type PlacesConfig struct {
	DataURL    string        `env:"AIRPORTS_DATA_URL" envDefault:"https://raw.githubusercontent.com/mwgg/Airports/master/airports.json"`
	DatasetTTL time.Duration `env:"PLACES_DATASET_TTL" envDefault:"24h"`
	QueryTTL   time.Duration `env:"PLACES_QUERY_TTL" envDefault:"1h"`
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
// It attempts to load .env files first (optional - won't fail if missing);
// with no arguments the .env file of the working directory is tried.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Provider.DefaultCurrency = strings.ToUpper(strings.TrimSpace(cfg.Provider.DefaultCurrency))
	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SKY_SCRAPER_TIMEOUT", cfg.Provider.Timeout},
		{"CACHE_RESPONSE_TTL", cfg.Cache.ResponseTTL},
		{"CACHE_CURVE_TTL", cfg.Cache.CurveTTL},
		{"PLACES_DATASET_TTL", cfg.Places.DatasetTTL},
		{"PLACES_QUERY_TTL", cfg.Places.QueryTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	validBackends := map[string]bool{CacheBackendMemory: true, CacheBackendRedis: true, CacheBackendNone: true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis, none; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == CacheBackendRedis && cfg.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
	}

	if !isCurrencyCode(cfg.Provider.DefaultCurrency) {
		return fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", cfg.Provider.DefaultCurrency)
	}

	if cfg.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst < 1 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if cfg.Provider.BaseURL == "" {
		return fmt.Errorf("SKY_SCRAPER_BASE_URL must not be empty")
	}
	if cfg.Places.DataURL == "" {
		return fmt.Errorf("AIRPORTS_DATA_URL must not be empty")
	}

	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
