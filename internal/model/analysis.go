package model

import "math"

// AnalysisResult holds the stability figures derived from a loaded ship.
// It is immutable once computed. GM is NaN when the plan is rejected for
// exceeding the ship's maximum weight.
type AnalysisResult struct {
	CGLongitudinalPct  float64 `json:"longitudinal_percent"` // CG along the length, percent
	CGTransversePct    float64 `json:"transverse_percent"`   // CG across the beam, percent
	GM                 float64 `json:"metacentric_height_m"`
	TotalCargoWeightKg float64 `json:"total_cargo_weight_kg"`
	PlacedItemCount    int     `json:"placed_item_count"`
}

// Overweight reports whether the analyzer rejected the plan.
func (r AnalysisResult) Overweight() bool {
	return math.IsNaN(r.GM)
}

// StabilityStatus classifies the metacentric height into the IMO-style
// bands used by the report formatters. The analyzer itself only returns
// the raw GM; classification is presentation policy.
func (r AnalysisResult) StabilityStatus() string {
	switch {
	case r.Overweight():
		return "rejected"
	case r.GM < 0.3:
		return "critical"
	case r.GM > 3.0:
		return "overstiff"
	case r.GM >= 0.5 && r.GM <= 2.5:
		return "optimal"
	default:
		return "acceptable"
	}
}

// Balanced reports whether the CG sits near midship: 45-55% along the
// length and 40-60% across the beam.
func (r AnalysisResult) Balanced() bool {
	return r.CGLongitudinalPct >= 45 && r.CGLongitudinalPct <= 55 &&
		r.CGTransversePct >= 40 && r.CGTransversePct <= 60
}

// BalanceStatus returns the balance classification for the formatters.
func (r AnalysisResult) BalanceStatus() string {
	if r.Overweight() {
		return "unknown"
	}
	if r.Balanced() {
		return "good"
	}
	return "warning"
}
