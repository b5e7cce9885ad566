package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// destinationsCmd represents the destinations command
var destinationsCmd = &cobra.Command{
	Use:   "destinations QUERY",
	Short: "Suggest destinations for a search term",
	Long:  `Suggest locations matching a free text query of at least three characters.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDestinations,
}

func init() {
	rootCmd.AddCommand(destinationsCmd)
}

func runDestinations(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	suggestions, err := client.GetDestinations(ctx, args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(suggestions)
	}

	if len(suggestions) == 0 {
		fmt.Println("No destinations found.")
		return nil
	}

	for _, s := range suggestions {
		fmt.Printf("• %s (%.4f, %.4f)\n", s.Label, s.Coordinates[0], s.Coordinates[1])
	}

	return nil
}
