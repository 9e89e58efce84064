package export

import (
	"fmt"

	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// dxfTextHeight is the label height in drawing units (meters).
const dxfTextHeight = 0.5

// ExportDXF writes a top-down CAD deck plan. The hull outline, each
// compartment boundary and the placed cargo footprints go on separate
// layers so stevedores can toggle them independently.
func ExportDXF(path string, ship *model.Ship, bins []model.Bin3D) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("HULL", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding hull layer: %w", err)
	}
	drawRect(d, 0, 0, ship.Length, ship.Width)

	if _, err := d.AddLayer("COMPARTMENTS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding compartment layer: %w", err)
	}
	for i := range bins {
		b := &bins[i]
		drawRect(d, b.X, b.Y, b.Width, b.Depth)
		d.Text(b.Name, b.X+dxfTextHeight, b.Y+dxfTextHeight, 0.0, dxfTextHeight)
	}

	if _, err := d.AddLayer("CARGO", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding cargo layer: %w", err)
	}
	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		if c.Position == nil {
			continue
		}
		drawRect(d, c.Position.X, c.Position.Y, c.Length, c.Width)
		d.Text(c.ID, c.Position.X+0.2, c.Position.Y+0.2, 0.0, dxfTextHeight)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving DXF: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four line entities on the
// current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0.0, x+w, y, 0.0)
	d.Line(x+w, y, 0.0, x+w, y+h, 0.0)
	d.Line(x+w, y+h, 0.0, x, y+h, 0.0)
	d.Line(x, y+h, 0.0, x, y, 0.0)
}
