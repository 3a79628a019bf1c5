package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/skyscraper-flight-search/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:   "info",
		Format:  "json",
		Service: "test-service",
		Env:     "test",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test message")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.Equal(t, "test", result["env"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_OmitsEmptyContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info"}, &buf)
	log.Info().Msg("x")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.NotContains(t, result, "service")
	assert.NotContains(t, result, "env")
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", Service: "svc"}, &buf)
	log.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Caller: true}, &buf)
	log.Info().Msg("x")

	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at error level", "error", "info", false},
		{"invalid level falls back to info", "loud", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("x")
			case "info":
				log.Info().Msg("x")
			case "warn":
				log.Warn().Msg("x")
			}

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Logging: config.LoggingConfig{Level: "warn", Format: "console", Caller: true, ServiceName: "flight-search"},
		App:     config.AppConfig{Env: "production"},
	}

	assert.Equal(t, Config{
		Level:   "warn",
		Format:  "console",
		Caller:  true,
		Service: "flight-search",
		Env:     "production",
	}, FromConfig(cfg))
}
