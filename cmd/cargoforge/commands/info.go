package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/parser"
)

var infoShipPath string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the ship's compartment topology and capacities",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoShipPath, "ship", "s", "", "ship configuration file (required)")
	infoCmd.MarkFlagRequired("ship")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ship, err := parser.LoadShip(infoShipPath)
	if err != nil {
		return err
	}

	fmt.Printf("Ship: %.1f m x %.1f m\n", ship.Length, ship.Width)
	fmt.Printf("Max weight      : %10.1f t\n", ship.MaxWeightKg/1000.0)
	fmt.Printf("Lightship weight: %10.1f t (KG %.1f m)\n",
		ship.LightshipWeightKg/1000.0, ship.LightshipKG)
	fmt.Printf("Deadweight      : %10.1f t\n",
		(ship.MaxWeightKg-ship.LightshipWeightKg)/1000.0)

	cfg := engine.DefaultConfig()
	bins := engine.New(cfg, nil).BuildBins(ship)
	fmt.Printf("\nCompartments (%d):\n", len(bins))
	for _, b := range bins {
		location := "below deck"
		if b.Deck {
			location = "on deck"
		}
		fmt.Printf("  %-12s %6.1f x %5.1f x %4.1f m at (%.1f, %.1f, %.1f) | max %8.1f t | %s\n",
			b.Name, b.Width, b.Depth, b.Height, b.X, b.Y, b.Z, b.MaxWeightKg/1000.0, location)
	}
	return nil
}
