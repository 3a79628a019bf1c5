package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	flighthttp "github.com/flight-search/skyscraper-flight-search/internal/adapter/http"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search ORIGIN DESTINATION DEPART_DATE",
		Short: "Search flight offers",
		Long: `Search normalizes the provider's offers, applies the stop and airline filters,
sorts and limits them, and prints the result with its price history.

Example:
  flightctl search JFK LHR 2025-06-01 --return 2025-06-10 --sort cheapest --max-stops 1`,
		Args: cobra.ExactArgs(3),
		RunE: runSearch,
	}

	cmd.Flags().String("return", "", "return date (YYYY-MM-DD) for a round trip")
	cmd.Flags().Int("adults", 1, "number of adult passengers (1-6)")
	cmd.Flags().String("cabin", "ECONOMY", "cabin: ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST")
	cmd.Flags().String("currency", "", "currency code (default: DEFAULT_CURRENCY)")
	cmd.Flags().String("sort", "", "cheapest, shortest or least_stops")
	cmd.Flags().Int("limit", 0, "maximum number of offers (1-100)")
	cmd.Flags().Int("max-stops", -1, "drop offers with more stops")
	cmd.Flags().StringSlice("airlines", nil, "allowed airline codes")
	cmd.Flags().Bool("no-cache", false, "skip the response cache read")
	return cmd
}

// searchRequest builds the request exactly as the HTTP API would receive it.
func searchRequest(cmd *cobra.Command, args []string) (*flighthttp.SearchFlightsRequest, error) {
	flags := cmd.Flags()
	req := &flighthttp.SearchFlightsRequest{
		Origin:      args[0],
		Destination: args[1],
		DepartDate:  args[2],
	}
	req.ReturnDate, _ = flags.GetString("return")
	req.Adults, _ = flags.GetInt("adults")
	req.Cabin, _ = flags.GetString("cabin")
	req.Currency, _ = flags.GetString("currency")
	req.Sort, _ = flags.GetString("sort")
	req.BypassCache, _ = flags.GetBool("no-cache")

	if flags.Changed("limit") {
		limit, _ := flags.GetInt("limit")
		req.Limit = flighthttp.LenientInt{Value: &limit}
	}
	if maxStops, _ := flags.GetInt("max-stops"); maxStops >= 0 {
		req.MaxStops = flighthttp.LenientInt{Value: &maxStops}
	}
	airlines, _ := flags.GetStringSlice("airlines")
	for _, code := range airlines {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			req.AllowedAirlines = append(req.AllowedAirlines, code)
		}
	}

	if err := req.Validate(); err != nil {
		var verrs *flighthttp.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid search: %s", formatFieldErrors(verrs.ToMap()))
		}
		return nil, fmt.Errorf("invalid search: %w", err)
	}
	return req, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	req, err := searchRequest(cmd, args)
	if err != nil {
		return err
	}

	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Search.Search(cmd.Context(), flighthttp.ToDomainQuery(req))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	return writeOutput(cmd.OutOrStdout(), format, result)
}

// formatFieldErrors renders field errors in a stable order.
func formatFieldErrors(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}
