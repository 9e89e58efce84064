package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/cargoforge/internal/model"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	unplacedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	placedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// WriteTable renders the placement summary as a fixed-width terminal
// table. Colors are applied only when enabled.
func WriteTable(w io.Writer, cargo []model.Cargo, color bool) error {
	header := fmt.Sprintf("%-15s | %-10s | %9s | %-17s | %-14s | %-8s",
		"Cargo ID", "Type", "Weight", "Position", "Dims", "Status")
	if color {
		header = tableHeaderStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	rule := "----------------+------------+-----------+-------------------+----------------+---------"
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}

	placed := 0
	for _, c := range cargo {
		pos, status := "-", "UNPLACED"
		if c.Position != nil {
			pos = fmt.Sprintf("%.1f,%.1f,%.1f", c.Position.X, c.Position.Y, c.Position.Z)
			status = "Placed"
			placed++
		}
		if color {
			if c.Placed() {
				status = placedStyle.Render(status)
			} else {
				status = unplacedStyle.Render(status)
			}
		}
		dims := fmt.Sprintf("%.1fx%.1fx%.1f", c.Length, c.Width, c.Height)
		_, err := fmt.Fprintf(w, "%-15s | %-10s | %8.1ft | %-17s | %-14s | %-8s\n",
			c.ID, c.Type, c.WeightKg/1000.0, pos, dims, status)
		if err != nil {
			return err
		}
	}

	if len(cargo) > 0 {
		_, err := fmt.Fprintf(w, "\nPlacement rate: %d/%d items (%.1f%%)\n",
			placed, len(cargo), float64(placed)/float64(len(cargo))*100.0)
		return err
	}
	return nil
}
