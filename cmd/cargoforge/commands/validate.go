package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/parser"
)

var (
	valShipPath     string
	valManifestPath string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a ship configuration and manifest without placing cargo",
	Long: `Parse the ship configuration and cargo manifest, report any
malformed rows, and flag items that can never be placed: point loads
over the deck strength limit and totals beyond the ship's capacity.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&valShipPath, "ship", "s", "", "ship configuration file (required)")
	validateCmd.Flags().StringVarP(&valManifestPath, "manifest", "m", "", "cargo manifest file (required)")
	validateCmd.MarkFlagRequired("ship")
	validateCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ship, err := parser.LoadShip(valShipPath)
	if err != nil {
		return fmt.Errorf("ship configuration invalid: %w", err)
	}
	fmt.Printf("Ship OK: %.1f m x %.1f m, max %.1f t\n",
		ship.Length, ship.Width, ship.MaxWeightKg/1000.0)

	manifest, err := parser.LoadManifest(valManifestPath)
	if err != nil {
		return fmt.Errorf("manifest invalid: %w", err)
	}
	for _, w := range manifest.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	limits := engine.DefaultLimits()
	problems := 0
	totalKg := 0.0
	for _, c := range manifest.Cargo {
		totalKg += c.WeightKg
		if load := engine.PointLoad(c); load > limits.MaxPointLoad {
			fmt.Printf("  problem: %s point load %.1f t/m2 exceeds deck strength %.1f t/m2\n",
				c.ID, load, limits.MaxPointLoad)
			problems++
		}
		if c.Length > ship.Length || c.Width > ship.Width {
			fmt.Printf("  problem: %s footprint %.1fx%.1f m exceeds the ship footprint\n",
				c.ID, c.Length, c.Width)
			problems++
		}
	}

	capacity := ship.MaxWeightKg - ship.LightshipWeightKg
	if totalKg > capacity {
		fmt.Printf("  problem: total cargo %.1f t exceeds available deadweight %.1f t\n",
			totalKg/1000.0, capacity/1000.0)
		problems++
	}

	fmt.Printf("Manifest OK: %d items, %.1f t total\n", len(manifest.Cargo), totalKg/1000.0)
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("No problems found.")
	return nil
}
