package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cargoforge/internal/model"
)

// cargoColor represents an RGB fill color for a placed item.
type cargoColor struct {
	R, G, B int
}

// cargoColors cycles through distinct fills so adjacent items stay
// readable on the bin diagrams.
var cargoColors = []cargoColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF stowage plan: one top-down diagram page per
// compartment, followed by a summary page with the stability analysis.
func ExportPDF(path string, ship *model.Ship, bins []model.Bin3D, result model.AnalysisResult) error {
	if len(bins) == 0 {
		return fmt.Errorf("no compartments to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i := range bins {
		pdf.AddPage()
		renderBinPage(pdf, ship, &bins[i], i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, ship, result)

	return pdf.OutputFileAndClose(path)
}

// binCargo returns the placed items whose origin falls inside the bin.
func binCargo(ship *model.Ship, bin *model.Bin3D) []model.Cargo {
	var items []model.Cargo
	for i := range ship.Cargo {
		c := ship.Cargo[i]
		if c.Position != nil && bin.Contains(*c.Position) {
			items = append(items, c)
		}
	}
	return items
}

// renderBinPage draws one compartment's top-down layout on the current page.
func renderBinPage(pdf *fpdf.Fpdf, ship *model.Ship, bin *model.Bin3D, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Compartment %d: %s (%.0f x %.0f m)", pageNum, bin.Name, bin.Width, bin.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	items := binCargo(ship, bin)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %.1f / %.1f t (%.1f%% capacity)",
		len(items), bin.CurrentWeightKg/1000.0, bin.MaxWeightKg/1000.0, bin.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the compartment footprint into the drawing area.
	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom
	scale := drawW / bin.Width
	if s := drawH / bin.Depth; s < scale {
		scale = s
	}

	originX := marginLeft
	originY := drawAreaTop

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(originX, originY, bin.Width*scale, bin.Depth*scale, "D")

	pdf.SetLineWidth(0.2)
	for i, c := range items {
		col := cargoColors[i%len(cargoColors)]
		pdf.SetFillColor(col.R, col.G, col.B)

		x := originX + (c.Position.X-bin.X)*scale
		y := originY + (c.Position.Y-bin.Y)*scale
		w := c.Length * scale
		h := c.Width * scale
		pdf.Rect(x, y, w, h, "FD")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(x, y+h/2-2)
		pdf.CellFormat(w, 4, c.ID, "", 0, "C", false, 0, "")
	}
}

// renderSummaryPage draws the overall load and stability summary.
func renderSummaryPage(pdf *fpdf.Fpdf, ship *model.Ship, result model.AnalysisResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Stowage Summary", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	y := marginTop + headerHeight + 8

	line := func(text string) {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, text, "", 0, "L", false, 0, "")
		y += 7
	}

	line(fmt.Sprintf("Ship: %.2f m x %.2f m | Max weight: %.2f t",
		ship.Length, ship.Width, ship.MaxWeightKg/1000.0))
	line(fmt.Sprintf("Placed items: %d / %d", result.PlacedItemCount, len(ship.Cargo)))
	line(fmt.Sprintf("Total cargo weight: %.2f t", result.TotalCargoWeightKg/1000.0))

	if result.Overweight() {
		pdf.SetTextColor(200, 0, 0)
		line("PLAN REJECTED: total weight exceeds the ship's maximum capacity.")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	line(fmt.Sprintf("Center of gravity: %.1f %% longitudinal, %.1f %% transverse (%s)",
		result.CGLongitudinalPct, result.CGTransversePct, result.BalanceStatus()))
	line(fmt.Sprintf("Metacentric height (GM): %.2f m (%s)", result.GM, result.StabilityStatus()))
}
