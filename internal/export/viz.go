package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
)

const (
	gridWidth  = 80
	gridHeight = 20
)

// WriteLayout renders a top-down ASCII view of the placed cargo scaled
// onto a fixed character grid. Unplaced items are omitted.
func WriteLayout(w io.Writer, ship *model.Ship) error {
	if ship == nil || len(ship.Cargo) == 0 {
		_, err := fmt.Fprintln(w, "\n[No cargo to visualize]")
		return err
	}

	grid := make([][]byte, gridHeight)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", gridWidth))
	}

	scaleX := gridWidth / ship.Length
	scaleY := gridHeight / ship.Width

	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		if c.Position == nil {
			continue
		}
		gx := int(c.Position.X * scaleX)
		gy := int(c.Position.Y * scaleY)
		gw := int(math.Ceil(c.Length * scaleX))
		gh := int(math.Ceil(c.Width * scaleY))
		if gw < 1 {
			gw = 1
		}
		if gh < 1 {
			gh = 1
		}
		for dy := 0; dy < gh && gy+dy < gridHeight; dy++ {
			for dx := 0; dx < gw && gx+dx < gridWidth; dx++ {
				if gx+dx >= 0 && gy+dy >= 0 {
					grid[gy+dy][gx+dx] = '#'
				}
			}
		}
	}

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("\n=== Top-Down Cargo Layout ===\n")
	p("Ship: %.1fm (L) x %.1fm (W)\n", ship.Length, ship.Width)
	p("Scale: # = cargo, . = empty\n\n")

	border := "   +" + strings.Repeat("-", gridWidth) + "+\n"
	p("%s", border)
	for y := 0; y < gridHeight; y++ {
		p("%2d |%s|\n", y, grid[y])
	}
	p("%s", border)
	p("    0")
	for x := 10; x < gridWidth; x += 10 {
		p("%9d", x)
	}
	p("\n\n")
	return err
}
