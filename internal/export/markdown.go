package export

import (
	"fmt"
	"io"

	"github.com/piwi3910/cargoforge/internal/model"
)

// WriteMarkdown renders the stowage plan as a Markdown report with a
// placement table and an analysis section.
func WriteMarkdown(w io.Writer, ship *model.Ship, cargo []model.Cargo, result model.AnalysisResult) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("# CargoForge Stowage Plan\n\n")
	p("**Ship:** %.2f m x %.2f m | **Max weight:** %.2f t\n\n",
		ship.Length, ship.Width, ship.MaxWeightKg/1000.0)

	p("## Placements\n\n")
	p("| Cargo ID | Type | Weight (t) | Dimensions (m) | Position (x, y, z) | Status |\n")
	p("|---|---|---|---|---|---|\n")
	for _, c := range cargo {
		pos, status := "-", "UNPLACED"
		if c.Position != nil {
			pos = fmt.Sprintf("%.1f, %.1f, %.1f", c.Position.X, c.Position.Y, c.Position.Z)
			status = "Placed"
		}
		p("| %s | %s | %.1f | %.1f x %.1f x %.1f | %s | %s |\n",
			c.ID, c.Type, c.WeightKg/1000.0, c.Length, c.Width, c.Height, pos, status)
	}

	p("\n## Stability Analysis\n\n")
	if result.Overweight() {
		p("**PLAN REJECTED:** total weight exceeds the ship's maximum capacity.\n")
		return err
	}
	p("- Placed items: %d / %d\n", result.PlacedItemCount, len(ship.Cargo))
	p("- Total cargo weight: %.2f t\n", result.TotalCargoWeightKg/1000.0)
	p("- Center of gravity: %.1f %% longitudinal, %.1f %% transverse (%s)\n",
		result.CGLongitudinalPct, result.CGTransversePct, result.BalanceStatus())
	p("- Metacentric height (GM): %.2f m (%s)\n", result.GM, result.StabilityStatus())
	return err
}
