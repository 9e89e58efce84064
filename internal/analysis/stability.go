// Package analysis derives naval-architecture stability figures from a
// loaded ship: center of gravity, draft and metacentric height.
package analysis

import (
	"math"

	"github.com/piwi3910/cargoforge/internal/model"
)

// Physical and regulatory constants for a typical dry cargo hull.
const (
	SeawaterDensity       = 1.025 // tonnes per cubic metre at 15 degrees C
	BlockCoefficient      = 0.75  // Cb: underwater hull volume vs bounding box
	WaterplaneCoefficient = 0.85  // Cw: waterplane area vs L x B rectangle
	KBFactor              = 0.53  // KB as a fraction of draft
)

// Cargo weight below this threshold keeps the CG at the 50/50 default.
const minCargoWeightKg = 0.01

// Analyze computes all stability metrics in a single pass over the cargo
// list. It reads positions, weights and dimensions and never mutates the
// ship, so repeated calls on an unchanged ship yield identical results.
//
// Unplaced items (nil Position) contribute nothing. If the loaded ship
// exceeds its maximum weight the plan is rejected: GM is NaN and the CG
// stays at the 50/50 default. Rejection is a sentinel, not an error.
func Analyze(ship *model.Ship) model.AnalysisResult {
	result := model.AnalysisResult{
		CGLongitudinalPct: 50.0,
		CGTransversePct:   50.0,
	}

	var momentX, momentY float64
	verticalMoment := ship.LightshipWeightKg * ship.LightshipKG

	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		if c.Position == nil {
			continue
		}
		result.PlacedItemCount++
		result.TotalCargoWeightKg += c.WeightKg
		momentX += c.WeightKg * (c.Position.X + c.Length/2)
		momentY += c.WeightKg * (c.Position.Y + c.Width/2)
		verticalMoment += c.WeightKg * (c.Position.Z + c.Height/2)
	}

	totalShipWeightKg := ship.LightshipWeightKg + result.TotalCargoWeightKg
	if totalShipWeightKg > ship.MaxWeightKg {
		result.GM = math.NaN()
		return result
	}

	if result.TotalCargoWeightKg > minCargoWeightKg {
		result.CGLongitudinalPct = momentX / result.TotalCargoWeightKg / ship.Length * 100.0
		result.CGTransversePct = momentY / result.TotalCargoWeightKg / ship.Width * 100.0
	}

	// KG: vertical center of gravity above keel.
	kg := verticalMoment / totalShipWeightKg

	// Draft from displacement: volume = L x B x T x Cb.
	displacedVolume := (totalShipWeightKg / 1000.0) / SeawaterDensity
	draft := displacedVolume / (ship.Length * ship.Width * BlockCoefficient)

	// KB: vertical center of buoyancy, an empirical fraction of draft.
	kb := KBFactor * draft

	// BM: transverse metacentric radius from the waterplane's second
	// moment of area about the centerline, IT = L x B^3 / 12 x Cw.
	inertiaT := ship.Length * math.Pow(ship.Width, 3) / 12.0 * WaterplaneCoefficient
	bm := inertiaT / displacedVolume

	result.GM = kb + bm - kg
	return result
}
