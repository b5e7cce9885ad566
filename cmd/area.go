package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stayscan/stayscan/filter"
	"github.com/stayscan/stayscan/ihg"
)

var (
	areaRadius   float64
	areaUnit     string
	areaCheckIn  string
	areaAdults   int
	areaChildren int
	areaFilter   string
	areaNames    bool
)

// areaCmd represents the area command
var areaCmd = &cobra.Command{
	Use:   "area LNG LAT",
	Short: "Find the cheapest open hotels around a coordinate pair",
	Long: `Search for hotels within a radius of a [longitude, latitude] pair and show
the lowest one-night price of every hotel with open availability.

Results can be narrowed with a filter expression over the fields Code, Name,
Cash, Points and Currency, e.g.:

  stayscan area 4.39 51.22 --filter 'Cash != nil && Cash < 150'
  stayscan area 4.39 51.22 --filter 'Points != nil' --names`,
	Args: cobra.ExactArgs(2),
	RunE: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().Float64Var(&areaRadius, "radius", 0, "search radius (default 100)")
	areaCmd.Flags().StringVar(&areaUnit, "unit", "mi", "radius unit (mi or km)")
	areaCmd.Flags().StringVar(&areaCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	areaCmd.Flags().IntVar(&areaAdults, "adults", 1, "number of adults")
	areaCmd.Flags().IntVar(&areaChildren, "children", 0, "number of children")
	areaCmd.Flags().StringVarP(&areaFilter, "filter", "f", "", "filter expression")
	areaCmd.Flags().BoolVar(&areaNames, "names", false, "fetch hotel names for the results")
}

func runArea(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	coords := make([]float64, 0, 2)
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: must be a number", arg)
		}
		coords = append(coords, v)
	}

	// Compile the filter before spending a network call on a bad expression.
	var entryFilter *filter.Filter
	if areaFilter != "" {
		var err error
		entryFilter, err = filter.Compile(areaFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	entries, err := client.GetLowestAreaPrices(ctx, ihg.AreaQuery{
		Coordinates: coords,
		Radius:      areaRadius,
		Unit:        areaUnit,
		CheckIn:     areaCheckIn,
		Adults:      areaAdults,
		Children:    areaChildren,
	})
	if err != nil {
		return err
	}

	if entryFilter != nil {
		kept := entries[:0]
		for _, entry := range entries {
			matched, err := entryFilter.Match(entry)
			if err != nil {
				return err
			}
			if matched {
				kept = append(kept, entry)
			}
		}
		entries = kept
	}

	if areaNames {
		if err := client.EnrichAreaPrices(ctx, entries); err != nil {
			return err
		}
	}

	if outputJSON {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No open hotels found for this search.")
		return nil
	}

	fmt.Printf("Found %d open hotels:\n", len(entries))
	fmt.Println(strings.Repeat("-", 60))
	for _, entry := range entries {
		points := "-"
		if entry.Points != nil {
			points = fmt.Sprintf("%.0f pts", *entry.Points)
		}
		fmt.Printf("%-8s %10s %s %12s", entry.HotelCode, fmtPrice(entry.CashPrice), entry.Currency, points)
		if entry.Name != "" {
			fmt.Printf("  %s", entry.Name)
		}
		fmt.Println()
	}

	return nil
}
