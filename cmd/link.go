package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stayscan/stayscan/ihg"
)

var (
	linkCheckIn  string
	linkCheckOut string
	linkAdults   int
	linkChildren int
)

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link CODE",
	Short: "Print the booking page URL for a stay",
	Long: `Build the deep link into the consumer booking flow for a hotel and stay
window. No request is made.`,
	Args: cobra.ExactArgs(1),
	// Pure string formatting; no config or client needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)

	linkCmd.Flags().StringVar(&linkCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	linkCmd.Flags().StringVar(&linkCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	linkCmd.Flags().IntVar(&linkAdults, "adults", 1, "number of adults")
	linkCmd.Flags().IntVar(&linkChildren, "children", 0, "number of children")
}

func runLink(cmd *cobra.Command, args []string) error {
	bookingURL, err := ihg.BookingPageURL(ihg.BookingQuery{
		HotelCode: args[0],
		CheckIn:   linkCheckIn,
		CheckOut:  linkCheckOut,
		Adults:    linkAdults,
		Children:  linkChildren,
	})
	if err != nil {
		return err
	}

	fmt.Println(bookingURL)
	return nil
}
