// Package main is the entry point for the flightctl CLI.
// It runs flight searches and airport lookups against the configured provider
// without starting the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/flight-search/skyscraper-flight-search/internal/bootstrap"
	"github.com/flight-search/skyscraper-flight-search/internal/config"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// newApp wires the service for one command; tests replace it.
var newApp = func(cmd *cobra.Command) (*bootstrap.App, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	level := "error"
	if verbose {
		level = "debug"
	}
	log := logger.NewWithOutput(logger.Config{
		Level:   level,
		Format:  logger.FormatConsole,
		Service: "flightctl",
	}, cmd.ErrOrStderr())

	return bootstrap.New(cmd.Context(), cfg, log)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flightctl",
		Short: "Search Sky-Scraper flights from the terminal",
		Long: `flightctl runs the same search and autocomplete pipeline as the HTTP service.
Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("env-file", "", "load configuration from this .env file")
	root.PersistentFlags().StringP("output", "o", formatJSON, "output format: json or yaml")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newSearchCmd(), newPlacesCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flightctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
