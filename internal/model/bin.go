package model

// MaxSpacesPerBin caps the append-only free-space list of a bin. Splitting
// stops once the list is full; the guillotine method never compacts or
// coalesces entries, so the cap bounds the search space.
const MaxSpacesPerBin = 1000

// Space3D is an axis-aligned free volume inside a Bin3D. Once a space is
// marked occupied it is never reused; splits append new entries instead of
// mutating the consumed one, so indices stay stable across a run.
type Space3D struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`  // extent along the ship's length
	Depth  float64 `json:"depth"`  // extent across the beam
	Height float64 `json:"height"` // vertical extent
	Free   bool    `json:"free"`
}

// Volume returns the space's volume in cubic metres.
func (s Space3D) Volume() float64 {
	return s.Width * s.Depth * s.Height
}

// Fits reports whether an item of the given oriented extents fits inside
// the space, allowing eps of tolerance so floating rounding from earlier
// splits does not reject a geometrically equal fit.
func (s Space3D) Fits(w, d, h, eps float64) bool {
	return w <= s.Width+eps && d <= s.Depth+eps && h <= s.Height+eps
}

// Bin3D is a named compartment (a hold or the deck) with independent weight
// capacity and free-space tracking. CurrentWeightKg never exceeds
// MaxWeightKg after an accepted placement.
type Bin3D struct {
	Name            string    `json:"name"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Z               float64   `json:"z"`
	Width           float64   `json:"width"`
	Depth           float64   `json:"depth"`
	Height          float64   `json:"height"`
	MaxWeightKg     float64   `json:"max_weight_kg"`
	CurrentWeightKg float64   `json:"current_weight_kg"`
	Deck            bool      `json:"deck"` // designated weather-deck bin
	Spaces          []Space3D `json:"spaces"`
}

// NewBin3D creates a compartment seeded with a single free space spanning
// its entire volume.
func NewBin3D(name string, x, y, z, width, depth, height, maxWeightKg float64, deck bool) Bin3D {
	return Bin3D{
		Name:        name,
		X:           x,
		Y:           y,
		Z:           z,
		Width:       width,
		Depth:       depth,
		Height:      height,
		MaxWeightKg: maxWeightKg,
		Deck:        deck,
		Spaces: []Space3D{{
			X: x, Y: y, Z: z,
			Width: width, Depth: depth, Height: height,
			Free: true,
		}},
	}
}

// Utilization returns the weight capacity used, as a percentage.
func (b Bin3D) Utilization() float64 {
	if b.MaxWeightKg == 0 {
		return 0
	}
	return b.CurrentWeightKg / b.MaxWeightKg * 100.0
}

// FreeSpaceCount returns the number of spaces still marked free.
func (b Bin3D) FreeSpaceCount() int {
	n := 0
	for _, s := range b.Spaces {
		if s.Free {
			n++
		}
	}
	return n
}

// Contains reports whether a position lies within the bin's envelope.
func (b Bin3D) Contains(p Position) bool {
	return p.X >= b.X && p.X < b.X+b.Width &&
		p.Y >= b.Y && p.Y < b.Y+b.Depth &&
		p.Z >= b.Z && p.Z < b.Z+b.Height
}
