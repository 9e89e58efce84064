package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/model"
)

func emptyShip() *model.Ship {
	return &model.Ship{
		Length:            200,
		Width:             32,
		MaxWeightKg:       50_000_000,
		LightshipWeightKg: 15_000_000,
		LightshipKG:       8,
	}
}

func TestAnalyze_EmptyShip(t *testing.T) {
	result := Analyze(emptyShip())

	assert.Equal(t, 0, result.PlacedItemCount)
	assert.Equal(t, 0.0, result.TotalCargoWeightKg)
	assert.Equal(t, 50.0, result.CGLongitudinalPct)
	assert.Equal(t, 50.0, result.CGTransversePct)
	// A lightly loaded hull with a low KG rides stiff but stable.
	assert.False(t, result.Overweight())
	assert.Greater(t, result.GM, 0.0)
}

func TestAnalyze_OverweightRejection(t *testing.T) {
	ship := &model.Ship{
		Length:            100,
		Width:             20,
		MaxWeightKg:       10_000_000,
		LightshipWeightKg: 2_000_000,
		LightshipKG:       5,
		Cargo: []model.Cargo{
			{ID: "C1", WeightKg: 9_000_000, Length: 10, Width: 10, Height: 4,
				Position: &model.Position{X: 0, Y: 0, Z: -8}},
		},
	}
	result := Analyze(ship)

	assert.True(t, result.Overweight())
	assert.True(t, math.IsNaN(result.GM))
	// Rejection keeps the CG at the 50/50 default.
	assert.Equal(t, 50.0, result.CGLongitudinalPct)
	assert.Equal(t, 50.0, result.CGTransversePct)
	assert.Equal(t, "rejected", result.StabilityStatus())
	assert.Equal(t, "unknown", result.BalanceStatus())
	// The weight totals still reflect the placed cargo.
	assert.InDelta(t, 9_000_000.0, result.TotalCargoWeightKg, 0.001)
	assert.Equal(t, 1, result.PlacedItemCount)
}

func TestAnalyze_AtExactCapacityIsAccepted(t *testing.T) {
	ship := &model.Ship{
		Length:            100,
		Width:             20,
		MaxWeightKg:       10_000_000,
		LightshipWeightKg: 2_000_000,
		LightshipKG:       5,
		Cargo: []model.Cargo{
			{ID: "C1", WeightKg: 8_000_000, Length: 10, Width: 10, Height: 4,
				Position: &model.Position{X: 45, Y: 5, Z: -8}},
		},
	}
	result := Analyze(ship)

	assert.False(t, result.Overweight())
	assert.False(t, math.IsNaN(result.GM))
}

func TestAnalyze_CenteredCargoBalances(t *testing.T) {
	ship := emptyShip()
	// A 10x10 item whose footprint center sits exactly at midship.
	ship.Cargo = []model.Cargo{
		{ID: "MID", WeightKg: 1_000_000, Length: 10, Width: 10, Height: 4,
			Position: &model.Position{X: 95, Y: 11, Z: -8}},
	}
	result := Analyze(ship)

	assert.InDelta(t, 50.0, result.CGLongitudinalPct, 0.001)
	assert.InDelta(t, 50.0, result.CGTransversePct, 0.001)
	assert.True(t, result.Balanced())
	assert.Equal(t, "good", result.BalanceStatus())
}

func TestAnalyze_ForwardCargoShiftsCG(t *testing.T) {
	ship := emptyShip()
	ship.Cargo = []model.Cargo{
		{ID: "FWD", WeightKg: 1_000_000, Length: 10, Width: 10, Height: 4,
			Position: &model.Position{X: 0, Y: 0, Z: -8}},
	}
	result := Analyze(ship)

	// Footprint center at x=5 of 200 m and y=5 of 32 m.
	assert.InDelta(t, 2.5, result.CGLongitudinalPct, 0.001)
	assert.InDelta(t, 15.625, result.CGTransversePct, 0.001)
	assert.False(t, result.Balanced())
	assert.Equal(t, "warning", result.BalanceStatus())
}

func TestAnalyze_UnplacedCargoExcluded(t *testing.T) {
	ship := emptyShip()
	ship.Cargo = []model.Cargo{
		{ID: "PLACED", WeightKg: 1_000_000, Length: 10, Width: 10, Height: 4,
			Position: &model.Position{X: 95, Y: 11, Z: -8}},
		{ID: "PENDING", WeightKg: 40_000_000, Length: 10, Width: 10, Height: 4},
	}
	result := Analyze(ship)

	// The 40,000 t pending item would reject the plan if counted.
	assert.False(t, result.Overweight())
	assert.Equal(t, 1, result.PlacedItemCount)
	assert.InDelta(t, 1_000_000.0, result.TotalCargoWeightKg, 0.001)
}

func TestAnalyze_Idempotent(t *testing.T) {
	ship := emptyShip()
	ship.Cargo = []model.Cargo{
		{ID: "A", WeightKg: 2_000_000, Length: 12, Width: 8, Height: 4,
			Position: &model.Position{X: 30, Y: 4, Z: -8}},
		{ID: "B", WeightKg: 3_000_000, Length: 20, Width: 10, Height: 4,
			Position: &model.Position{X: 120, Y: 10, Z: 0}},
	}

	first := Analyze(ship)
	second := Analyze(ship)
	require.Equal(t, first, second)
}

func TestAnalyze_GMFormula(t *testing.T) {
	ship := &model.Ship{
		Length:            100,
		Width:             20,
		MaxWeightKg:       20_000_000,
		LightshipWeightKg: 10_000_000,
		LightshipKG:       6,
	}
	result := Analyze(ship)

	// Worked by hand: displacement 10,000 t.
	volume := 10_000.0 / SeawaterDensity
	draft := volume / (100.0 * 20.0 * BlockCoefficient)
	kb := KBFactor * draft
	bm := (100.0 * math.Pow(20.0, 3) / 12.0 * WaterplaneCoefficient) / volume
	want := kb + bm - 6.0

	assert.InDelta(t, want, result.GM, 1e-9)
}
