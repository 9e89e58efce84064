package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/project"
)

var analyzePlanName string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [plan.json]",
	Short: "Render the report for a previously computed plan",
	Long: `Read a stowage plan document, either a JSON file produced with
"optimize --format json" or a plan saved with "optimize --save", and
render it in any of the report formats without recomputing placement.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePlanName, "plan", "", "name of a saved plan")
	rootCmd.AddCommand(analyzeCmd)
}

// documentToModel rebuilds the in-memory ship and analysis result from a
// plan document so the regular formatters can render it.
func documentToModel(doc export.Document) (*model.Ship, model.AnalysisResult) {
	ship := &model.Ship{
		Length:            doc.Ship.Length,
		Width:             doc.Ship.Width,
		MaxWeightKg:       doc.Ship.MaxWeight,
		LightshipWeightKg: doc.Ship.LightshipWeight,
		LightshipKG:       doc.Ship.LightshipKG,
	}
	for _, c := range doc.Cargo {
		ship.Cargo = append(ship.Cargo, model.Cargo{
			ID:       c.ID,
			WeightKg: c.Weight,
			Length:   c.Dimensions[0],
			Width:    c.Dimensions[1],
			Height:   c.Dimensions[2],
			Type:     model.CargoType(c.Type),
			Position: c.Position,
		})
	}

	result := model.AnalysisResult{
		CGLongitudinalPct:  doc.Analysis.CenterOfGravity.LongitudinalPercent,
		CGTransversePct:    doc.Analysis.CenterOfGravity.TransversePercent,
		TotalCargoWeightKg: doc.Analysis.TotalCargoWeight,
		PlacedItemCount:    doc.Analysis.PlacedCount,
		GM:                 math.NaN(),
	}
	if doc.Analysis.MetacentricHeight != nil {
		result.GM = *doc.Analysis.MetacentricHeight
	}
	return ship, result
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var doc export.Document
	switch {
	case analyzePlanName != "":
		var err error
		doc, err = project.LoadPlan(analyzePlanName)
		if err != nil {
			return err
		}
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening plan file: %w", err)
		}
		defer f.Close()
		doc, err = export.ReadDocument(f)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("provide a plan file or --plan <name>")
	}

	ship, result := documentToModel(doc)
	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()
	return writeReport(out, outputFormat(), ship, ship.Cargo, result)
}
