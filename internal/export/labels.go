package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cargoforge/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each cargo label's QR code.
type LabelInfo struct {
	CargoID string  `json:"id"`
	WeightT float64 `json:"weight_t"`
	Length  float64 `json:"length_m"`
	Width   float64 `json:"width_m"`
	Height  float64 `json:"height_m"`
	Type    string  `json:"type"`
	X       float64 `json:"x_m"`
	Y       float64 `json:"y_m"`
	Z       float64 `json:"z_m"`
}

// Label layout constants for Avery 5160-compatible sheets (3 columns,
// 10 rows on US Letter).
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // mm
	labelPadding    = 2.0  // mm
)

// ExportLabels generates a PDF of QR-coded handling labels for every
// placed cargo item. Each label shows the cargo ID, stow position and
// weight, with the full item metadata encoded as JSON in the QR code.
func ExportLabels(path string, ship *model.Ship) error {
	var labels []LabelInfo
	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		if c.Position == nil {
			continue
		}
		labels = append(labels, LabelInfo{
			CargoID: c.ID,
			WeightT: c.WeightKg / 1000.0,
			Length:  c.Length,
			Width:   c.Width,
			Height:  c.Height,
			Type:    string(c.Type),
			X:       c.Position.X,
			Y:       c.Position.Y,
			Z:       c.Position.Z,
		})
	}
	if len(labels) == 0 {
		return fmt.Errorf("no placed cargo to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight
		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("rendering label for %q: %w", label.CargoID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws one label cell: QR code on the left, text on the right.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, label LabelInfo) error {
	payload, err := json.Marshal(label)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return err
	}

	imgName := fmt.Sprintf("qr-%s", label.CargoID)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding + qrSize + labelPadding
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(textX, y+labelPadding+2)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4, label.CargoID, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+7)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 3.5,
		fmt.Sprintf("%.1f x %.1f x %.1f m | %.1f t", label.Length, label.Width, label.Height, label.WeightT),
		"", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 3.5,
		fmt.Sprintf("Stow: %.1f, %.1f, %.1f", label.X, label.Y, label.Z),
		"", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+15)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 3.5, label.Type, "", 0, "L", false, 0, "")
	return nil
}
