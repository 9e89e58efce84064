package engine

import (
	"log/slog"
	"sort"

	"github.com/piwi3910/cargoforge/internal/model"
)

// maxShelves caps the shelf list of a 2D bin.
const maxShelves = 64

// shelf is one horizontal row inside a 2D bin: items are appended along
// the row until its width is exhausted, then a new row opens above.
type shelf struct {
	y         float64 // offset across the bin's depth
	height    float64
	usedWidth float64
}

// shelfBin is a flat compartment packed row by row. Width runs along the
// ship's length, depth across the beam.
type shelfBin struct {
	name       string
	x, y, z    float64
	width      float64
	depth      float64
	usedDepth  float64
	shelves    []shelf
}

// ShelfPlacer is the original single-layer loading mode: a 2D first-fit
// decreasing shelf heuristic over two holds and the deck, sorting by
// weight instead of volume and trying only the two flat orientations.
// Kept for flat stowage of non-stackable cargo; selected with
// --algorithm=2d.
type ShelfPlacer struct {
	log *slog.Logger
}

func NewShelfPlacer(log *slog.Logger) *ShelfPlacer {
	if log == nil {
		log = slog.Default()
	}
	return &ShelfPlacer{log: log}
}

// Place assigns positions with the 2D shelf heuristic, mutating each
// item's Position in place. Unplaceable items keep a nil Position.
func (p *ShelfPlacer) Place(ship *model.Ship) {
	order := make([]*model.Cargo, len(ship.Cargo))
	for i := range ship.Cargo {
		order[i] = &ship.Cargo[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].WeightKg > order[j].WeightKg
	})

	bins := []shelfBin{
		{name: "Hold1", x: 0, y: 0, z: -5.0, width: ship.Length / 2, depth: ship.Width},
		{name: "Hold2", x: ship.Length / 2, y: 0, z: -5.0, width: ship.Length / 2, depth: ship.Width},
		{name: "Deck", x: 0, y: 0, z: 0, width: ship.Length, depth: ship.Width},
	}

	placed := 0
	for _, c := range order {
		ok := false
		for b := range bins {
			if bins[b].insert(c) {
				ok = true
				break
			}
		}
		if ok {
			placed++
		} else {
			c.Position = nil
			p.log.Warn("could not place cargo", "cargo", c.ID)
		}
	}
	p.log.Info("placement complete", "placed", placed, "total", len(ship.Cargo), "mode", "2d")
}

// insert tries the item's two flat orientations against every existing
// shelf first, then opens a new shelf if depth remains. Returns false if
// neither orientation fits anywhere in this bin.
func (b *shelfBin) insert(c *model.Cargo) bool {
	orientations := [2][2]float64{
		{c.Length, c.Width},
		{c.Width, c.Length},
	}
	n := 2
	if c.Length == c.Width {
		n = 1
	}

	for i := 0; i < n; i++ {
		w, d := orientations[i][0], orientations[i][1]

		for k := range b.shelves {
			sh := &b.shelves[k]
			if d <= sh.height && w <= b.width-sh.usedWidth {
				c.Position = &model.Position{
					X: b.x + sh.usedWidth,
					Y: b.y + sh.y,
					Z: b.z,
				}
				sh.usedWidth += w
				return true
			}
		}

		if b.usedDepth+d <= b.depth && len(b.shelves) < maxShelves {
			b.shelves = append(b.shelves, shelf{
				y:         b.usedDepth,
				height:    d,
				usedWidth: w,
			})
			c.Position = &model.Position{
				X: b.x,
				Y: b.y + b.usedDepth,
				Z: b.z,
			}
			b.usedDepth += d
			return true
		}
	}
	return false
}
