package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/analysis"
	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/parser"
	"github.com/piwi3910/cargoforge/internal/project"
)

var (
	optShipPath     string
	optManifestPath string
	optAlgorithm    string
	optNoViz        bool
	optOnlyPlaced   bool
	optOnlyFailed   bool
	optTypeFilter   string
	optPDFPath      string
	optLabelsPath   string
	optDXFPath      string
	optXLSXPath     string
	optSaveName     string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Compute a stowage plan and stability report",
	Long: `Load a ship configuration and cargo manifest, place the cargo into
the ship's compartments and report the resulting stability figures.

The manifest may be a whitespace text file, CSV or XLSX. Use "-" as
the manifest path to read from stdin.`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optShipPath, "ship", "s", "", "ship configuration file (required)")
	optimizeCmd.Flags().StringVarP(&optManifestPath, "manifest", "m", "", "cargo manifest file (required)")
	optimizeCmd.Flags().StringVarP(&optAlgorithm, "algorithm", "a", "3d", "placement algorithm: 3d (guillotine) or 2d (shelf)")
	optimizeCmd.Flags().BoolVar(&optNoViz, "no-viz", false, "skip the ASCII layout view")
	optimizeCmd.Flags().BoolVar(&optOnlyPlaced, "only-placed", false, "report placed items only")
	optimizeCmd.Flags().BoolVar(&optOnlyFailed, "only-failed", false, "report unplaced items only")
	optimizeCmd.Flags().StringVar(&optTypeFilter, "type", "", "report items of one cargo type only")
	optimizeCmd.Flags().StringVar(&optPDFPath, "pdf", "", "also write a PDF stowage plan to this path")
	optimizeCmd.Flags().StringVar(&optLabelsPath, "labels", "", "also write QR cargo labels PDF to this path")
	optimizeCmd.Flags().StringVar(&optDXFPath, "dxf", "", "also write a CAD deck plan to this path")
	optimizeCmd.Flags().StringVar(&optXLSXPath, "xlsx", "", "also write an Excel workbook to this path")
	optimizeCmd.Flags().StringVar(&optSaveName, "save", "", "save the plan under this name for later analysis")
	optimizeCmd.MarkFlagRequired("ship")
	optimizeCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(optimizeCmd)
}

// loadShipAndManifest reads both inputs and attaches the cargo.
func loadShipAndManifest(shipPath, manifestPath string) (*model.Ship, error) {
	ship, err := parser.LoadShip(shipPath)
	if err != nil {
		return nil, fmt.Errorf("loading ship: %w", err)
	}
	manifest, err := parser.LoadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	for _, warning := range manifest.Warnings {
		slog.Warn(warning)
	}
	if len(manifest.Cargo) == 0 {
		return nil, fmt.Errorf("manifest contains no valid cargo items")
	}
	ship.Cargo = manifest.Cargo
	return ship, nil
}

// placeCargo runs the selected placement algorithm.
func placeCargo(ship *model.Ship, algorithm string) ([]model.Bin3D, error) {
	switch algorithm {
	case "3d":
		cfg := engine.DefaultConfig()
		cfg.LogSummary = true
		return engine.New(cfg, slog.Default()).Place(ship), nil
	case "2d":
		engine.NewShelfPlacer(slog.Default()).Place(ship)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want 3d or 2d)", algorithm)
	}
}

// writeReport dispatches to the formatter named by --format.
func writeReport(w io.Writer, format string, ship *model.Ship, cargo []model.Cargo, result model.AnalysisResult) error {
	switch format {
	case "human":
		if err := export.WriteHuman(w, ship, cargo, result, useColor()); err != nil {
			return err
		}
		if !optNoViz && !result.Overweight() {
			return export.WriteLayout(w, ship)
		}
		return nil
	case "table":
		return export.WriteTable(w, cargo, useColor())
	case "json":
		return export.WriteJSON(w, ship, result)
	case "csv":
		return export.WriteCSV(w, cargo)
	case "markdown":
		return export.WriteMarkdown(w, ship, cargo, result)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if optOnlyPlaced && optOnlyFailed {
		return fmt.Errorf("--only-placed and --only-failed are mutually exclusive")
	}

	ship, err := loadShipAndManifest(optShipPath, optManifestPath)
	if err != nil {
		return err
	}

	bins, err := placeCargo(ship, optAlgorithm)
	if err != nil {
		return err
	}
	result := analysis.Analyze(ship)

	filter := export.Filter{
		OnlyPlaced: optOnlyPlaced,
		OnlyFailed: optOnlyFailed,
		Type:       model.CargoType(optTypeFilter),
	}
	cargo := filter.Apply(ship.Cargo)

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	if err := writeReport(out, outputFormat(), ship, cargo, result); err != nil {
		return err
	}

	if optPDFPath != "" {
		if len(bins) == 0 {
			return fmt.Errorf("--pdf requires the 3d algorithm")
		}
		if err := export.ExportPDF(optPDFPath, ship, bins, result); err != nil {
			return fmt.Errorf("writing PDF plan: %w", err)
		}
		slog.Info("wrote PDF plan", "path", optPDFPath)
	}
	if optLabelsPath != "" {
		if err := export.ExportLabels(optLabelsPath, ship); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		slog.Info("wrote cargo labels", "path", optLabelsPath)
	}
	if optDXFPath != "" {
		if err := export.ExportDXF(optDXFPath, ship, bins); err != nil {
			return fmt.Errorf("writing DXF plan: %w", err)
		}
		slog.Info("wrote DXF deck plan", "path", optDXFPath)
	}
	if optXLSXPath != "" {
		if err := export.ExportXLSX(optXLSXPath, ship, result); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		slog.Info("wrote Excel workbook", "path", optXLSXPath)
	}
	if optSaveName != "" {
		path, err := project.SavePlan(optSaveName, export.BuildDocument(ship, result))
		if err != nil {
			return fmt.Errorf("saving plan: %w", err)
		}
		slog.Info("saved plan", "name", optSaveName, "path", path)
	}
	return nil
}
