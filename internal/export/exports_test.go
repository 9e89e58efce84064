package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/model"
)

func loadedShipAndBins() (*model.Ship, []model.Bin3D) {
	ship := &model.Ship{
		Length:            200,
		Width:             32,
		MaxWeightKg:       50_000_000,
		LightshipWeightKg: 15_000_000,
		LightshipKG:       8,
		Cargo: []model.Cargo{
			{ID: "CONT-001", WeightKg: 24_500, Length: 6, Width: 2.4, Height: 2.6,
				Type: model.TypeStandard, Position: &model.Position{X: 0, Y: 0, Z: -8}},
			{ID: "CONT-002", WeightKg: 18_000, Length: 6, Width: 2.4, Height: 2.6,
				Type: model.TypeHazardous, Position: &model.Position{X: 20, Y: 4, Z: 0}},
			{ID: "CONT-003", WeightKg: 9_000, Length: 3, Width: 2, Height: 2,
				Type: model.TypeReefer},
		},
	}
	bins := []model.Bin3D{
		model.NewBin3D("ForwardHold", 0, 0, -8, 60, 25.6, 8, 15_000_000, false),
		model.NewBin3D("Deck", 0, 0, 0, 200, 32, 4, 20_000_000, true),
	}
	bins[0].CurrentWeightKg = 24_500
	bins[1].CurrentWeightKg = 18_000
	return ship, bins
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "export did not create the file")
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF_CreatesFile(t *testing.T) {
	ship, bins := loadedShipAndBins()
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, ship, bins, acceptedResult()))
	assertNonEmptyFile(t, path)
}

func TestExportPDF_NoBins(t *testing.T) {
	ship, _ := loadedShipAndBins()
	err := ExportPDF(filepath.Join(t.TempDir(), "plan.pdf"), ship, nil, acceptedResult())
	assert.Error(t, err)
}

func TestExportLabels_CreatesFile(t *testing.T) {
	ship, _ := loadedShipAndBins()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, ship))
	assertNonEmptyFile(t, path)
}

func TestExportLabels_NoPlacedCargo(t *testing.T) {
	ship := &model.Ship{
		Cargo: []model.Cargo{{ID: "PENDING", WeightKg: 1000, Length: 1, Width: 1, Height: 1}},
	}
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), ship)
	assert.Error(t, err)
}

func TestExportDXF_CreatesFile(t *testing.T) {
	ship, bins := loadedShipAndBins()
	path := filepath.Join(t.TempDir(), "deck.dxf")

	require.NoError(t, ExportDXF(path, ship, bins))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CARGO", "cargo layer must be present")
}

func TestExportXLSX_CreatesFile(t *testing.T) {
	ship, _ := loadedShipAndBins()
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	require.NoError(t, ExportXLSX(path, ship, acceptedResult()))
	assertNonEmptyFile(t, path)
}
