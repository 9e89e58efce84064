package engine

import (
	"log/slog"
	"math"

	"github.com/piwi3910/cargoforge/internal/model"
)

// Limits bounds what the constraint checker accepts. Values mirror the
// IMDG-style rules the planner enforces: point loading of the tank top,
// hazardous-material separation, and the share of total displacement
// allowed on the weather deck.
type Limits struct {
	MaxPointLoad        float64 // tonnes per square metre
	MinHazmatSeparation float64 // metres, 3D euclidean
	MaxDeckWeightRatio  float64 // fraction of ship max weight
}

// DefaultLimits returns the stock constraint limits.
func DefaultLimits() Limits {
	return Limits{
		MaxPointLoad:        1000.0,
		MinHazmatSeparation: 3.0,
		MaxDeckWeightRatio:  0.3,
	}
}

// Checker evaluates placement candidates against the ship's current state.
// All checks are pure predicates over state established by previously
// committed placements; the checker never mutates anything.
type Checker struct {
	limits Limits
	log    *slog.Logger
}

func NewChecker(limits Limits, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.Default()
	}
	return &Checker{limits: limits, log: log}
}

// PointLoad returns an item's deck loading in tonnes per square metre.
// The footprint is always the item's manifest length x width: rotated
// placements keep the unrotated footprint, a deliberate simplification
// carried over from the original planner.
func PointLoad(c model.Cargo) float64 {
	area := c.Length * c.Width
	if area < 0.01 {
		return 0
	}
	return (c.WeightKg / 1000.0) / area
}

// hazmatSeparated reports whether a hazardous item at the candidate origin
// keeps the minimum 3D distance to every already-placed hazardous item.
// Unplaced items are skipped, which naturally excludes the candidate
// itself since it has no committed position yet.
func (k *Checker) hazmatSeparated(ship *model.Ship, x, y, z float64) bool {
	for i := range ship.Cargo {
		other := &ship.Cargo[i]
		if other.Position == nil || !other.Hazardous() {
			continue
		}
		dx := other.Position.X - x
		dy := other.Position.Y - y
		dz := other.Position.Z - z
		if math.Sqrt(dx*dx+dy*dy+dz*dz) < k.limits.MinHazmatSeparation {
			return false
		}
	}
	return true
}

// Admissible reports whether placing cargo at the origin of space inside
// bin satisfies every hard constraint. Reefer and fragile handling are
// advisory only: they log a note but never block a placement.
func (k *Checker) Admissible(ship *model.Ship, cargo model.Cargo, bin *model.Bin3D, space model.Space3D) bool {
	if load := PointLoad(cargo); load > k.limits.MaxPointLoad {
		k.log.Debug("constraint violation: point load",
			"cargo", cargo.ID, "load_t_per_sqm", load, "max", k.limits.MaxPointLoad)
		return false
	}

	if cargo.Hazardous() && !k.hazmatSeparated(ship, space.X, space.Y, space.Z) {
		k.log.Debug("constraint violation: hazmat separation",
			"cargo", cargo.ID, "min_separation_m", k.limits.MinHazmatSeparation)
		return false
	}

	if bin.Deck {
		ratio := (bin.CurrentWeightKg + cargo.WeightKg) / ship.MaxWeightKg
		if ratio > k.limits.MaxDeckWeightRatio {
			k.log.Debug("constraint violation: deck weight ratio",
				"cargo", cargo.ID, "ratio", ratio, "max", k.limits.MaxDeckWeightRatio)
			return false
		}
	}

	// Advisory signals only from here on.
	if cargo.Reefer() && !bin.Deck {
		k.log.Info("reefer cargo stowed below deck, no reefer plugs assumed",
			"cargo", cargo.ID, "bin", bin.Name)
	}
	if cargo.Fragile() && space.Z < -5.0 {
		k.log.Info("fragile cargo stowed deep in hold",
			"cargo", cargo.ID, "bin", bin.Name, "z", space.Z)
	}

	return true
}
