package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// hotelCmd represents the hotel command
var hotelCmd = &cobra.Command{
	Use:   "hotel CODE",
	Short: "Show the profile of one hotel",
	Long: `Look up a hotel by its mnemonic code and print its profile: name, brand,
address, coordinates and booking URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runHotel,
}

func init() {
	rootCmd.AddCommand(hotelCmd)
}

func runHotel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	profile, err := client.GetHotelDetails(ctx, args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(profile)
	}

	fmt.Printf("%s (%s)\n", profile.Name, profile.Code)
	fmt.Println(strings.Repeat("-", 60))
	if profile.BrandName != nil {
		fmt.Printf("Brand:   %s (%s)\n", *profile.BrandName, profile.BrandCode)
	} else {
		fmt.Printf("Brand:   %s\n", profile.BrandCode)
	}
	if len(profile.Street) > 0 {
		fmt.Printf("Address: %s\n", strings.Join(profile.Street, ", "))
	}
	location := fmt.Sprintf("%s %s", profile.PostalCode, profile.City)
	if profile.State != nil {
		location += ", " + *profile.State
	}
	fmt.Printf("         %s, %s\n", location, profile.Country)
	fmt.Printf("Rooms:   %d\n", profile.RoomCount)
	fmt.Printf("Coords:  %.5f, %.5f\n", profile.Longitude, profile.Latitude)
	if profile.URL != nil {
		fmt.Printf("URL:     %s\n", *profile.URL)
	}
	if profile.ShortDescription != "" {
		fmt.Printf("\n%s\n", profile.ShortDescription)
	}

	return nil
}
