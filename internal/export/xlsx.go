package export

import (
	"fmt"
	"math"

	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the stowage plan as an Excel workbook with one sheet
// of placements and one sheet of analysis figures.
func ExportXLSX(path string, ship *model.Ship, result model.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const placements = "Placements"
	f.SetSheetName("Sheet1", placements)

	headers := []string{"Cargo ID", "Type", "Weight (t)", "Length (m)", "Width (m)", "Height (m)",
		"Pos X (m)", "Pos Y (m)", "Pos Z (m)", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(placements, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, c := range ship.Cargo {
		values := []any{c.ID, string(c.Type), c.WeightKg / 1000.0, c.Length, c.Width, c.Height}
		if c.Position != nil {
			values = append(values, c.Position.X, c.Position.Y, c.Position.Z, "placed")
		} else {
			values = append(values, nil, nil, nil, "unplaced")
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(placements, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row+2, err)
			}
		}
	}

	const analysis = "Analysis"
	if _, err := f.NewSheet(analysis); err != nil {
		return fmt.Errorf("creating analysis sheet: %w", err)
	}

	rows := [][2]any{
		{"Ship length (m)", ship.Length},
		{"Ship width (m)", ship.Width},
		{"Max weight (t)", ship.MaxWeightKg / 1000.0},
		{"Total cargo weight (t)", result.TotalCargoWeightKg / 1000.0},
		{"Placed items", result.PlacedItemCount},
		{"CG longitudinal (%)", result.CGLongitudinalPct},
		{"CG transverse (%)", result.CGTransversePct},
		{"Balance", result.BalanceStatus()},
		{"Stability", result.StabilityStatus()},
	}
	if !math.IsNaN(result.GM) {
		rows = append(rows, [2]any{"Metacentric height GM (m)", result.GM})
	}
	for i, r := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(analysis, keyCell, r[0]); err != nil {
			return fmt.Errorf("writing analysis: %w", err)
		}
		if err := f.SetCellValue(analysis, valCell, r[1]); err != nil {
			return fmt.Errorf("writing analysis: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
