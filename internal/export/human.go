package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/cargoforge/internal/model"
)

// DWTSafetyFactor is the recommended deadweight utilization ceiling; the
// report warns when the loaded ship exceeds it.
const DWTSafetyFactor = 0.90

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// stabilityLabel maps the raw classification to the report wording.
func stabilityLabel(result model.AnalysisResult) string {
	switch result.StabilityStatus() {
	case "critical":
		return "CRITICAL - Too tender"
	case "overstiff":
		return "WARNING - Too stiff"
	case "optimal":
		return "Optimal"
	default:
		return "Acceptable"
	}
}

// WriteHuman renders the human-readable stability report: placed items,
// load summary, CG balance and the GM classification.
func WriteHuman(w io.Writer, ship *model.Ship, cargo []model.Cargo, result model.AnalysisResult, color bool) error {
	style := func(s lipgloss.Style, text string) string {
		if color {
			return s.Render(text)
		}
		return text
	}

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("\n%s\n\n", style(titleStyle, "--- CargoForge Stability Analysis ---"))
	p("Ship Specs: %.2f m x %.2f m | Max Weight: %.2f t\n",
		ship.Length, ship.Width, ship.MaxWeightKg/1000.0)
	p("----------------------------------------------------------------------\n")

	if result.Overweight() {
		p("  - %s\n", style(dangerStyle, "PLAN REJECTED: Total weight exceeds ship's maximum capacity."))
		return err
	}

	for _, c := range cargo {
		if c.Position == nil {
			continue
		}
		p("  - %-15s | Pos (X,Y): (%7.2f, %7.2f) | %.2f t\n",
			c.ID, c.Position.X, c.Position.Y, c.WeightKg/1000.0)
	}

	balance := "Good"
	if !result.Balanced() {
		balance = style(warnStyle, "Warning")
	} else {
		balance = style(okStyle, balance)
	}

	totalShipWeight := ship.LightshipWeightKg + result.TotalCargoWeightKg
	p("\nLoad Summary\n")
	p("  - Placed / Total items: %d / %d\n", result.PlacedItemCount, len(ship.Cargo))
	p("  - Total loaded weight : %.2f t (%.1f %% of max)\n",
		result.TotalCargoWeightKg/1000.0,
		totalShipWeight/ship.MaxWeightKg*100.0)
	if totalShipWeight > ship.MaxWeightKg*DWTSafetyFactor {
		p("  - %s\n", style(warnStyle,
			fmt.Sprintf("WARNING: exceeds %.0f %% DWT safety margin!", DWTSafetyFactor*100.0)))
	}
	p("  - CG (Lon / Trans)    : %.1f %% / %.1f %% | Balance: %s\n",
		result.CGLongitudinalPct, result.CGTransversePct, balance)
	p("  - Metacentric Height (GM): %.2f m | Stability: %s\n", result.GM, stabilityLabel(result))
	return err
}
