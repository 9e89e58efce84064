package engine

import (
	"log/slog"
	"math"
	"sort"

	"github.com/piwi3910/cargoforge/internal/model"
)

// HoldSpec describes one compartment carved proportionally from the ship's
// envelope. Fractions refer to ship length and width; BaseZ and Height are
// absolute metres relative to the waterline.
type HoldSpec struct {
	Name       string
	StartFrac  float64 // origin along the length, fraction of L
	LengthFrac float64
	WidthFrac  float64
	BaseZ      float64
	Height     float64
	WeightFrac float64 // share of ship max weight this bin may carry
	Deck       bool
}

// Config parameterizes a single placement run. The hold topology is a
// design input, not something the algorithm infers from the manifest.
type Config struct {
	Holds           []HoldSpec
	Limits          Limits
	FitEpsilon      float64
	MaxSpacesPerBin int
	LogSummary      bool
}

// DefaultConfig returns the standard three-compartment layout: two holds
// below the waterline taking 30% of the length each (80% of the beam,
// leaving room for side tanks) and the full-footprint weather deck with a
// lower stacking height.
func DefaultConfig() Config {
	return Config{
		Holds: []HoldSpec{
			{Name: "ForwardHold", StartFrac: 0.0, LengthFrac: 0.3, WidthFrac: 0.8, BaseZ: -8.0, Height: 8.0, WeightFrac: 0.3},
			{Name: "AftHold", StartFrac: 0.7, LengthFrac: 0.3, WidthFrac: 0.8, BaseZ: -8.0, Height: 8.0, WeightFrac: 0.3},
			{Name: "Deck", StartFrac: 0.0, LengthFrac: 1.0, WidthFrac: 1.0, BaseZ: 0.0, Height: 4.0, WeightFrac: 0.4, Deck: true},
		},
		Limits:          DefaultLimits(),
		FitEpsilon:      0.01,
		MaxSpacesPerBin: model.MaxSpacesPerBin,
		LogSummary:      true,
	}
}

// Placer runs the 3D guillotine bin-packing heuristic: items sorted by
// volume descending, best (tightest) fit across every bin, free space and
// orientation, then a three-way guillotine split of the consumed space.
type Placer struct {
	cfg   Config
	check *Checker
	log   *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Placer {
	if log == nil {
		log = slog.Default()
	}
	if cfg.FitEpsilon == 0 {
		cfg.FitEpsilon = 0.01
	}
	if cfg.MaxSpacesPerBin == 0 {
		cfg.MaxSpacesPerBin = model.MaxSpacesPerBin
	}
	return &Placer{
		cfg:   cfg,
		check: NewChecker(cfg.Limits, log),
		log:   log,
	}
}

// BuildBins materializes the configured hold topology for a ship, each bin
// seeded with one free space spanning its whole volume.
func (p *Placer) BuildBins(ship *model.Ship) []model.Bin3D {
	bins := make([]model.Bin3D, 0, len(p.cfg.Holds))
	for _, h := range p.cfg.Holds {
		bins = append(bins, model.NewBin3D(
			h.Name,
			ship.Length*h.StartFrac, 0.0, h.BaseZ,
			ship.Length*h.LengthFrac,
			ship.Width*h.WidthFrac,
			h.Height,
			ship.MaxWeightKg*h.WeightFrac,
			h.Deck,
		))
	}
	return bins
}

// Place assigns a position to every cargo item the heuristic can fit,
// mutating each item's Position in place. Items with no admissible
// placement keep a nil Position; that is a reported outcome, never an
// error. The materialized bins are returned for downstream reporting.
func (p *Placer) Place(ship *model.Ship) []model.Bin3D {
	bins := p.BuildBins(ship)

	// First-fit decreasing: largest volume first. The stable sort keeps
	// manifest order for equal volumes, which fixes tie-break outcomes.
	order := make([]*model.Cargo, len(ship.Cargo))
	for i := range ship.Cargo {
		order[i] = &ship.Cargo[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Volume() > order[j].Volume()
	})

	placed := 0
	for _, c := range order {
		binIdx, spaceIdx, orient, ok := p.findBestFit(ship, bins, *c)
		if !ok {
			c.Position = nil
			p.log.Warn("could not place cargo",
				"cargo", c.ID,
				"dims_m", []float64{c.Length, c.Width, c.Height},
				"weight_kg", c.WeightKg)
			continue
		}

		bin := &bins[binIdx]
		sp := bin.Spaces[spaceIdx]
		c.Position = &model.Position{X: sp.X, Y: sp.Y, Z: sp.Z}
		bin.CurrentWeightKg += c.WeightKg

		dims := Orientations(c.Length, c.Width, c.Height)[orient]
		p.splitSpace(bin, spaceIdx, dims[0], dims[1], dims[2])
		placed++
	}

	if p.cfg.LogSummary {
		p.log.Info("placement complete", "placed", placed, "total", len(ship.Cargo))
		for i := range bins {
			p.log.Info("bin utilization",
				"bin", bins[i].Name,
				"weight_kg", bins[i].CurrentWeightKg,
				"max_weight_kg", bins[i].MaxWeightKg,
				"percent", bins[i].Utilization())
		}
	}
	return bins
}

// findBestFit scans every bin, free space and orientation and keeps the
// candidate whose enclosing space has the smallest volume (tightest fit,
// minimizing geometric waste). Bins that would exceed their weight ceiling
// are skipped outright.
func (p *Placer) findBestFit(ship *model.Ship, bins []model.Bin3D, c model.Cargo) (binIdx, spaceIdx, orientation int, ok bool) {
	binIdx, spaceIdx, orientation = -1, -1, -1
	bestVolume := math.MaxFloat64
	orientations := Orientations(c.Length, c.Width, c.Height)

	for b := range bins {
		bin := &bins[b]
		if bin.CurrentWeightKg+c.WeightKg > bin.MaxWeightKg {
			continue
		}
		for s, sp := range bin.Spaces {
			if !sp.Free {
				continue
			}
			if !p.check.Admissible(ship, c, bin, sp) {
				continue
			}
			for o, dims := range orientations {
				if !sp.Fits(dims[0], dims[1], dims[2], p.cfg.FitEpsilon) {
					continue
				}
				if v := sp.Volume(); v < bestVolume {
					bestVolume = v
					binIdx, spaceIdx, orientation = b, s, o
				}
			}
		}
	}
	return binIdx, spaceIdx, orientation, binIdx >= 0
}

// splitSpace marks the consumed space occupied and appends up to three
// residual free spaces using the guillotine method: a right remainder
// along the width, a back remainder limited to the consumed width, and a
// top remainder limited to the consumed footprint. Residuals with a
// non-positive dimension are dropped; volume is conserved exactly.
func (p *Placer) splitSpace(bin *model.Bin3D, idx int, w, d, h float64) {
	sp := bin.Spaces[idx]
	bin.Spaces[idx].Free = false

	if len(bin.Spaces) >= p.cfg.MaxSpacesPerBin-3 {
		p.log.Warn("free-space list full, skipping split", "bin", bin.Name)
		return
	}

	if sp.Width-w > 0 {
		bin.Spaces = append(bin.Spaces, model.Space3D{
			X: sp.X + w, Y: sp.Y, Z: sp.Z,
			Width: sp.Width - w, Depth: sp.Depth, Height: sp.Height,
			Free: true,
		})
	}
	if sp.Depth-d > 0 {
		bin.Spaces = append(bin.Spaces, model.Space3D{
			X: sp.X, Y: sp.Y + d, Z: sp.Z,
			Width: w, Depth: sp.Depth - d, Height: sp.Height,
			Free: true,
		})
	}
	if sp.Height-h > 0 {
		bin.Spaces = append(bin.Spaces, model.Space3D{
			X: sp.X, Y: sp.Y, Z: sp.Z + h,
			Width: w, Depth: d, Height: sp.Height - h,
			Free: true,
		})
	}
}
