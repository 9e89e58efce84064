package engine

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/cargoforge/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPointLoad_Basic(t *testing.T) {
	// 100 t over a 2x5 m footprint is 10 t/m2.
	c := model.Cargo{WeightKg: 100000, Length: 2, Width: 5}
	assert.InDelta(t, 10.0, PointLoad(c), 0.001)
}

func TestPointLoad_TinyFootprintIsZero(t *testing.T) {
	c := model.Cargo{WeightKg: 100000, Length: 0.05, Width: 0.05}
	assert.Equal(t, 0.0, PointLoad(c))
}

func TestAdmissible_PointLoadOverLimit(t *testing.T) {
	k := NewChecker(DefaultLimits(), discardLogger())
	ship := &model.Ship{Length: 200, Width: 32, MaxWeightKg: 50_000_000}
	bin := model.NewBin3D("Hold", 0, 0, -8, 60, 25, 8, 15_000_000, false)

	// 1100 t on 1x1 m exceeds 1000 t/m2.
	c := model.Cargo{ID: "HEAVY", WeightKg: 1_100_000, Length: 1, Width: 1, Height: 1}
	assert.False(t, k.Admissible(ship, c, &bin, bin.Spaces[0]))

	c.WeightKg = 900_000
	assert.True(t, k.Admissible(ship, c, &bin, bin.Spaces[0]))
}

func TestAdmissible_HazmatSeparation(t *testing.T) {
	k := NewChecker(DefaultLimits(), discardLogger())
	ship := &model.Ship{
		Length: 200, Width: 32, MaxWeightKg: 50_000_000,
		Cargo: []model.Cargo{
			{ID: "HAZ-1", WeightKg: 1000, Length: 1, Width: 1, Height: 1,
				Type: model.TypeHazardous, Position: &model.Position{X: 10, Y: 10, Z: 0}},
		},
	}
	bin := model.NewBin3D("Deck", 0, 0, 0, 200, 32, 4, 20_000_000, true)
	c := model.Cargo{ID: "HAZ-2", WeightKg: 1000, Length: 1, Width: 1, Height: 1, Type: model.TypeHazardous}

	// 2 m away from HAZ-1: too close.
	near := model.Space3D{X: 12, Y: 10, Z: 0, Width: 5, Depth: 5, Height: 4, Free: true}
	assert.False(t, k.Admissible(ship, c, &bin, near))

	// Exactly 3 m away satisfies the minimum.
	atLimit := model.Space3D{X: 13, Y: 10, Z: 0, Width: 5, Depth: 5, Height: 4, Free: true}
	assert.True(t, k.Admissible(ship, c, &bin, atLimit))
}

func TestAdmissible_HazmatIgnoresUnplacedAndNonHazmat(t *testing.T) {
	k := NewChecker(DefaultLimits(), discardLogger())
	ship := &model.Ship{
		Length: 200, Width: 32, MaxWeightKg: 50_000_000,
		Cargo: []model.Cargo{
			// Unplaced hazmat has no committed position and cannot block.
			{ID: "HAZ-PENDING", Type: model.TypeHazardous},
			// Standard cargo nearby is fine.
			{ID: "STD", Type: model.TypeStandard, Position: &model.Position{X: 10, Y: 10, Z: 0}},
		},
	}
	bin := model.NewBin3D("Deck", 0, 0, 0, 200, 32, 4, 20_000_000, true)
	c := model.Cargo{ID: "HAZ-2", WeightKg: 1000, Length: 1, Width: 1, Height: 1, Type: model.TypeHazardous}
	sp := model.Space3D{X: 10, Y: 10, Z: 0, Width: 5, Depth: 5, Height: 4, Free: true}

	assert.True(t, k.Admissible(ship, c, &bin, sp))
}

func TestAdmissible_DeckWeightRatio(t *testing.T) {
	k := NewChecker(DefaultLimits(), discardLogger())
	ship := &model.Ship{Length: 200, Width: 32, MaxWeightKg: 50_000_000}
	deck := model.NewBin3D("Deck", 0, 0, 0, 200, 32, 4, 20_000_000, true)
	deck.CurrentWeightKg = 14_000_000 // 28% of ship max already on deck

	// Another 1500 t would push the deck to 31%, over the 30% cap.
	c := model.Cargo{ID: "BOX", WeightKg: 1_500_000, Length: 10, Width: 10, Height: 2}
	assert.False(t, k.Admissible(ship, c, &deck, deck.Spaces[0]))

	// The same item in a hold is unconstrained by the deck ratio.
	hold := model.NewBin3D("Hold", 0, 0, -8, 60, 25, 8, 15_000_000, false)
	assert.True(t, k.Admissible(ship, c, &hold, hold.Spaces[0]))
}

func TestAdmissible_ReeferAndFragileAreAdvisory(t *testing.T) {
	k := NewChecker(DefaultLimits(), discardLogger())
	ship := &model.Ship{Length: 200, Width: 32, MaxWeightKg: 50_000_000}
	hold := model.NewBin3D("Hold", 0, 0, -8, 60, 25, 8, 15_000_000, false)

	reefer := model.Cargo{ID: "RF", WeightKg: 10000, Length: 6, Width: 2.4, Height: 2.6, Type: model.TypeReefer}
	fragile := model.Cargo{ID: "FG", WeightKg: 10000, Length: 6, Width: 2.4, Height: 2.6, Type: model.TypeFragile}

	assert.True(t, k.Admissible(ship, reefer, &hold, hold.Spaces[0]))
	assert.True(t, k.Admissible(ship, fragile, &hold, hold.Spaces[0]))
}
