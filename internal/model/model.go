package model

import "github.com/google/uuid"

// CargoType classifies a cargo item for constraint handling.
// Unknown values are treated as standard cargo.
type CargoType string

const (
	TypeStandard  CargoType = "standard"
	TypeHazardous CargoType = "hazardous"
	TypeReefer    CargoType = "reefer"
	TypeFragile   CargoType = "fragile"
	TypeHeavy     CargoType = "heavy"
)

// Position is a committed placement origin in metres from the ship datum
// (x along the length, y across the beam, z relative to the waterline).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Cargo represents a single freight item from the manifest.
// Weight is in kilograms, dimensions in metres. Position is nil until the
// placement engine commits the item, and stays nil when no admissible
// placement exists.
type Cargo struct {
	ID       string    `json:"id"`
	WeightKg float64   `json:"weight_kg"`
	Length   float64   `json:"length_m"`
	Width    float64   `json:"width_m"`
	Height   float64   `json:"height_m"`
	Type     CargoType `json:"type"`
	Position *Position `json:"position,omitempty"`
}

func NewCargo(id string, weightKg, length, width, height float64, t CargoType) Cargo {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	if t == "" {
		t = TypeStandard
	}
	return Cargo{
		ID:       id,
		WeightKg: weightKg,
		Length:   length,
		Width:    width,
		Height:   height,
		Type:     t,
	}
}

// Volume returns the item's volume in cubic metres.
func (c Cargo) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// Placed reports whether the placement engine committed a position.
func (c Cargo) Placed() bool {
	return c.Position != nil
}

func (c Cargo) Hazardous() bool { return c.Type == TypeHazardous }
func (c Cargo) Reefer() bool    { return c.Type == TypeReefer }
func (c Cargo) Fragile() bool   { return c.Type == TypeFragile }

// Ship is the vessel being loaded. It owns its cargo collection for the
// duration of a run; the slice keeps manifest order, not placement order.
type Ship struct {
	Length            float64 `json:"length_m"`
	Width             float64 `json:"width_m"`
	MaxWeightKg       float64 `json:"max_weight_kg"`
	LightshipWeightKg float64 `json:"lightship_weight_kg"`
	LightshipKG       float64 `json:"lightship_kg_m"` // vertical CG of the empty vessel, metres above keel
	Cargo             []Cargo `json:"cargo"`
}

// PlacedCount returns the number of cargo items with a committed position.
func (s *Ship) PlacedCount() int {
	n := 0
	for i := range s.Cargo {
		if s.Cargo[i].Placed() {
			n++
		}
	}
	return n
}

// TotalCargoWeightKg sums the weight of every manifest item, placed or not.
func (s *Ship) TotalCargoWeightKg() float64 {
	var total float64
	for i := range s.Cargo {
		total += s.Cargo[i].WeightKg
	}
	return total
}

// TotalCargoVolume sums the volume of every manifest item in cubic metres.
func (s *Ship) TotalCargoVolume() float64 {
	var total float64
	for i := range s.Cargo {
		total += s.Cargo[i].Volume()
	}
	return total
}

// CountByType tallies manifest items per cargo type.
func (s *Ship) CountByType() map[CargoType]int {
	counts := make(map[CargoType]int)
	for i := range s.Cargo {
		counts[s.Cargo[i].Type]++
	}
	return counts
}
