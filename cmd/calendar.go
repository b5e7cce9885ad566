package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stayscan/stayscan/ihg"
)

var (
	calendarStart string
	calendarEnd   string
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar CODE",
	Short: "Show the lowest price per check-in date",
	Long: `Fetch the lowest cash and points price for every check-in date of a range.
Without flags the range starts today and spans the maximum window.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVar(&calendarStart, "start", "", "first check-in date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarEnd, "end", "", "last check-in date (YYYY-MM-DD)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cal, err := client.GetLowestHotelPrices(ctx, ihg.CalendarQuery{
		HotelCode: args[0],
		StartDate: calendarStart,
		EndDate:   calendarEnd,
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(cal)
	}

	fmt.Printf("Lowest prices for %s (%s)\n", args[0], cal.Currency)
	fmt.Println(strings.Repeat("-", 44))
	fmt.Printf("%-12s %12s %14s\n", "DATE", "CASH", "POINTS")
	for _, day := range cal.Days {
		points := "-"
		if day.Points != nil {
			points = fmt.Sprintf("%.0f", *day.Points)
		}
		fmt.Printf("%-12s %12s %14s\n", day.Date, fmtPrice(day.CashPrice), points)
	}

	return nil
}
