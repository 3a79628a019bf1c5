// Package logger builds the zerolog loggers used by the server and the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/config"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal, panic)
	Level string

	// Format is FormatJSON or FormatConsole
	Format string

	// Caller adds the source location to every entry
	Caller bool

	// Service and Env are attached to every entry when set
	Service string
	Env     string
}

// FromConfig maps the service configuration to a logger Config.
func FromConfig(cfg *config.Config) Config {
	return Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Service: cfg.Logging.ServiceName,
		Env:     cfg.App.Env,
	}
}

// New creates a logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) zerolog.Logger {
	writer := output
	if strings.EqualFold(cfg.Format, FormatConsole) {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if cfg.Env != "" {
		ctx = ctx.Str("env", cfg.Env)
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
