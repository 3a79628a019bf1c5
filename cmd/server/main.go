// Package main is the entry point for the Sky-Scraper flight search service.
//
//	@title						Sky-Scraper Flight Search API
//	@version					1.0.0
//	@description				Normalizes Sky-Scraper flight offers into one canonical shape, filters, sorts and limits them, and attaches a reconciled price history.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/skyscraper-flight-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/skyscraper-flight-search/docs"

	// Application layers
	flighthttp "github.com/flight-search/skyscraper-flight-search/internal/adapter/http"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/skyscraper-flight-search/internal/bootstrap"
	"github.com/flight-search/skyscraper-flight-search/internal/config"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Name).
		Msg("Configuration loaded")

	var opts []bootstrap.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, bootstrap.WithRegisterer(prometheus.DefaultRegisterer))
	}

	app, err := bootstrap.New(context.Background(), cfg, appLog, opts...)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to wire service")
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLog.Error().Err(err).Msg("Error closing cache store")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLog, app.Metrics)

	// Setup routes
	setupRoutes(e, app, appLog)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupLogger builds the service logger and installs it as the global zerolog logger.
func setupLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := logger.New(logger.FromConfig(cfg))
	log.Logger = l
	return l
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, app *bootstrap.App, l zerolog.Logger) {
	flightHandler := flighthttp.NewFlightHandler(app.Search, app.Places, l)
	flighthttp.RegisterRoutes(e, flightHandler)

	if app.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, l zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	l.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("Error during server shutdown")
	}

	l.Info().Msg("Server stopped")
}
