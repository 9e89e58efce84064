package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/model"
)

func testShip(cargo ...model.Cargo) *model.Ship {
	return &model.Ship{
		Length:            200,
		Width:             32,
		MaxWeightKg:       50_000_000,
		LightshipWeightKg: 15_000_000,
		LightshipKG:       8,
		Cargo:             cargo,
	}
}

func testPlacer() *Placer {
	cfg := DefaultConfig()
	cfg.LogSummary = false
	return New(cfg, discardLogger())
}

func TestBuildBins_DefaultTopology(t *testing.T) {
	bins := testPlacer().BuildBins(testShip())
	require.Len(t, bins, 3)

	forward := bins[0]
	assert.Equal(t, "ForwardHold", forward.Name)
	assert.Equal(t, 0.0, forward.X)
	assert.Equal(t, -8.0, forward.Z)
	assert.InDelta(t, 60.0, forward.Width, 0.001)
	assert.InDelta(t, 25.6, forward.Depth, 0.001)
	assert.InDelta(t, 15_000_000.0, forward.MaxWeightKg, 0.001)
	assert.False(t, forward.Deck)

	aft := bins[1]
	assert.Equal(t, "AftHold", aft.Name)
	assert.InDelta(t, 140.0, aft.X, 0.001)

	deck := bins[2]
	assert.Equal(t, "Deck", deck.Name)
	assert.True(t, deck.Deck)
	assert.Equal(t, 0.0, deck.Z)
	assert.InDelta(t, 200.0, deck.Width, 0.001)

	// Every bin starts with one free space spanning its whole volume.
	for _, b := range bins {
		require.Len(t, b.Spaces, 1)
		assert.True(t, b.Spaces[0].Free)
		assert.InDelta(t, b.Width*b.Depth*b.Height, b.Spaces[0].Volume(), 0.001)
	}
}

func TestPlace_SingleItem(t *testing.T) {
	ship := testShip(model.NewCargo("C-1", 10000, 6, 2.4, 2.6, model.TypeStandard))
	bins := testPlacer().Place(ship)

	require.NotNil(t, ship.Cargo[0].Position)
	// Tightest seed space is a hold, so the item lands at the forward
	// hold's origin on the tank top.
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: -8}, *ship.Cargo[0].Position)
	assert.InDelta(t, 10000.0, bins[0].CurrentWeightKg, 0.001)
	assert.Equal(t, 3, bins[0].FreeSpaceCount())
}

func TestPlace_LargestVolumeFirst(t *testing.T) {
	// The small item is listed first but the large one must be placed
	// first and take the hold origin.
	ship := testShip(
		model.NewCargo("SMALL", 1000, 2, 2, 2, model.TypeStandard),
		model.NewCargo("LARGE", 50000, 10, 5, 5, model.TypeStandard),
	)
	testPlacer().Place(ship)

	require.NotNil(t, ship.Cargo[0].Position)
	require.NotNil(t, ship.Cargo[1].Position)
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: -8}, *ship.Cargo[1].Position)
	// The small item takes the tightest residual: on top of the large one.
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: -3}, *ship.Cargo[0].Position)
}

func TestPlace_UnplaceableKeepsNilPosition(t *testing.T) {
	ship := testShip(
		model.NewCargo("OK", 10000, 6, 2.4, 2.6, model.TypeStandard),
		model.NewCargo("TOO-LONG", 10000, 300, 2, 2, model.TypeStandard),
	)
	testPlacer().Place(ship)

	assert.NotNil(t, ship.Cargo[0].Position)
	assert.Nil(t, ship.Cargo[1].Position)
	assert.Equal(t, 1, ship.PlacedCount())
}

func TestPlace_Deterministic(t *testing.T) {
	manifest := func() []model.Cargo {
		return []model.Cargo{
			model.NewCargo("A", 20000, 8, 4, 3, model.TypeStandard),
			model.NewCargo("B", 20000, 8, 4, 3, model.TypeStandard), // same volume, later in manifest
			model.NewCargo("C", 5000, 3, 3, 3, model.TypeHazardous),
			model.NewCargo("D", 15000, 12, 2, 2, model.TypeReefer),
		}
	}

	first := testShip(manifest()...)
	second := testShip(manifest()...)
	testPlacer().Place(first)
	testPlacer().Place(second)

	for i := range first.Cargo {
		if first.Cargo[i].Position == nil {
			assert.Nil(t, second.Cargo[i].Position)
			continue
		}
		require.NotNil(t, second.Cargo[i].Position)
		assert.Equal(t, *first.Cargo[i].Position, *second.Cargo[i].Position,
			"cargo %s moved between identical runs", first.Cargo[i].ID)
	}
}

func TestPlace_BinWeightNeverExceedsCapacity(t *testing.T) {
	// 10 x 6000 t overloads every compartment's individual budget.
	var cargo []model.Cargo
	for i := 0; i < 10; i++ {
		cargo = append(cargo, model.NewCargo("", 6_000_000, 10, 10, 4, model.TypeStandard))
	}
	ship := testShip(cargo...)
	bins := testPlacer().Place(ship)

	for _, b := range bins {
		assert.LessOrEqual(t, b.CurrentWeightKg, b.MaxWeightKg,
			"bin %s loaded past its weight ceiling", b.Name)
	}
	// The weather deck additionally respects the 30% displacement share.
	deck := bins[2]
	assert.LessOrEqual(t, deck.CurrentWeightKg/ship.MaxWeightKg, DefaultLimits().MaxDeckWeightRatio+1e-9)
}

func TestPlace_HazmatPairKeptApart(t *testing.T) {
	ship := testShip(
		model.NewCargo("HAZ-1", 1000, 2, 2, 2, model.TypeHazardous),
		model.NewCargo("HAZ-2", 1000, 2, 2, 2, model.TypeHazardous),
	)
	testPlacer().Place(ship)

	a, b := ship.Cargo[0].Position, ship.Cargo[1].Position
	require.NotNil(t, a)
	require.NotNil(t, b)
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	distSq := dx*dx + dy*dy + dz*dz
	min := DefaultLimits().MinHazmatSeparation
	assert.GreaterOrEqual(t, distSq, min*min)
}

func TestSplitSpace_VolumeConserved(t *testing.T) {
	p := testPlacer()
	bin := model.NewBin3D("Hold", 0, 0, 0, 10, 10, 10, 1_000_000, false)
	original := bin.Spaces[0].Volume()

	p.splitSpace(&bin, 0, 4, 3, 2)

	require.Len(t, bin.Spaces, 4)
	assert.False(t, bin.Spaces[0].Free)

	var freeVolume float64
	for _, s := range bin.Spaces[1:] {
		require.True(t, s.Free)
		freeVolume += s.Volume()
	}
	itemVolume := 4.0 * 3.0 * 2.0
	assert.InDelta(t, original, freeVolume+itemVolume, 1e-9)
}

func TestSplitSpace_ExactFitLeavesNoResiduals(t *testing.T) {
	p := testPlacer()
	bin := model.NewBin3D("Hold", 0, 0, 0, 10, 10, 10, 1_000_000, false)

	p.splitSpace(&bin, 0, 10, 10, 10)

	require.Len(t, bin.Spaces, 1)
	assert.False(t, bin.Spaces[0].Free)
	assert.Equal(t, 0, bin.FreeSpaceCount())
}

func TestSplitSpace_CapStopsSplittingButConsumesSpace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogSummary = false
	cfg.MaxSpacesPerBin = 4
	p := New(cfg, discardLogger())

	bin := model.NewBin3D("Hold", 0, 0, 0, 10, 10, 10, 1_000_000, false)
	bin.Spaces = append(bin.Spaces,
		model.Space3D{Free: true}, model.Space3D{Free: true})

	// len(Spaces) is already at cap-1; the consumed space must still be
	// marked occupied even though no residuals are appended.
	p.splitSpace(&bin, 0, 2, 2, 2)
	assert.Len(t, bin.Spaces, 3)
	assert.False(t, bin.Spaces[0].Free)
}
