package main

import (
	"github.com/spf13/cobra"

	flighthttp "github.com/flight-search/skyscraper-flight-search/internal/adapter/http"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

func newPlacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places QUERY",
		Short: "Look up airports by code, city, name or country",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlaces,
	}
	cmd.Flags().Int("limit", domain.DefaultPlacesLimit, "maximum number of suggestions (1-12)")
	return cmd
}

func runPlaces(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	result, err := app.Places.Autocomplete(cmd.Context(), args[0], limit)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	return writeOutput(cmd.OutOrStdout(), format, flighthttp.ToPlacesResponse(result))
}
