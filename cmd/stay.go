package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stayscan/stayscan/ihg"
)

var (
	stayCheckIn  string
	stayCheckOut string
	stayAdults   int
	stayChildren int
)

// stayCmd represents the stay command
var stayCmd = &cobra.Command{
	Use:   "stay CODE",
	Short: "Show products, rate plans and prices for one stay",
	Long: `Fetch the available room products and rate plans of a hotel for a specific
stay window, with the cash or points price of each combination. Defaults to a
one night stay starting today for one adult.`,
	Args: cobra.ExactArgs(1),
	RunE: runStay,
}

func init() {
	rootCmd.AddCommand(stayCmd)

	stayCmd.Flags().StringVar(&stayCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	stayCmd.Flags().StringVar(&stayCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	stayCmd.Flags().IntVar(&stayAdults, "adults", 1, "number of adults")
	stayCmd.Flags().IntVar(&stayChildren, "children", 0, "number of children")
}

func runStay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	offer, err := client.GetStayPrices(ctx, ihg.StayQuery{
		HotelCode: args[0],
		CheckIn:   stayCheckIn,
		CheckOut:  stayCheckOut,
		Adults:    stayAdults,
		Children:  stayChildren,
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(offer)
	}

	fmt.Printf("Rooms at %s:\n", args[0])
	for _, p := range offer.Products {
		fmt.Printf("• %s (%s)", p.Name, p.Code)
		if p.Premium {
			fmt.Printf(" [PREMIUM]")
		}
		fmt.Println()
	}

	fmt.Println("\nRate plans:")
	for _, rp := range offer.RatePlans {
		fmt.Printf("• %s (%s)\n", rp.Name, rp.Code)
	}

	if len(offer.Prices) == 0 {
		fmt.Println("\nNo priced combinations for this stay.")
		return nil
	}

	fmt.Println("\nPrices:")
	fmt.Println(strings.Repeat("-", 60))
	for _, price := range offer.Prices {
		fmt.Printf("%-8s %-10s", price.ProductCode, price.RateCode)
		if price.CashPrice != nil {
			fmt.Printf(" %10.2f\n", *price.CashPrice)
			continue
		}
		var opts []string
		for _, o := range price.PointsOptions {
			if o.CashPrice == 0 {
				opts = append(opts, fmt.Sprintf("%.0f pts", o.Points))
			} else {
				opts = append(opts, fmt.Sprintf("%.0f pts + %.2f", o.Points, o.CashPrice))
			}
		}
		fmt.Printf(" %s\n", strings.Join(opts, " / "))
	}

	return nil
}
