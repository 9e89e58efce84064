// Package parser reads ship configuration and cargo manifest files.
// Ship configs are key=value text; manifests are whitespace-delimited
// rows of "ID weight LxWxH type". CSV and XLSX manifests are handled by
// the importer in this package.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
)

// ManifestResult collects the outcome of parsing a cargo manifest.
// Malformed rows are skipped and reported as warnings; invalid numeric
// values abort the parse with an error.
type ManifestResult struct {
	Cargo    []model.Cargo
	Warnings []string
}

// parseFloat parses a strictly bounded positive float, mirroring the
// range checks applied to every numeric field in the input files.
func parseFloat(s string, min, max float64, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", field, s, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("out-of-range %s value %q (expected %g..%g)", field, s, min, max)
	}
	return v, nil
}

// ParseShip reads a key=value ship configuration. Lines starting with '#'
// and blank lines are skipped. Weights are given in tonnes and converted
// to kilograms.
func ParseShip(r io.Reader) (*model.Ship, error) {
	ship := &model.Ship{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		v, err := parseFloat(value, 0.1, 1e9, key)
		if err != nil {
			return nil, err
		}
		switch key {
		case "length_m":
			ship.Length = v
		case "width_m":
			ship.Width = v
		case "max_weight_tonnes":
			ship.MaxWeightKg = v * 1000.0
		case "lightship_weight_tonnes":
			ship.LightshipWeightKg = v * 1000.0
		case "lightship_kg_m":
			ship.LightshipKG = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ship config: %w", err)
	}
	return ship, nil
}

// LoadShip reads a ship configuration from a file, or stdin when the
// path is "-".
func LoadShip(path string) (*model.Ship, error) {
	if path == "-" {
		return ParseShip(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ship config: %w", err)
	}
	defer f.Close()
	return ParseShip(f)
}

// ParseManifest reads a whitespace-delimited cargo manifest. Each row is
// "ID weight LxWxH type" with weight in tonnes. Rows with a wrong field
// count are skipped with a warning; rows with unparseable numbers abort.
func ParseManifest(r io.Reader) (ManifestResult, error) {
	var result ManifestResult
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: malformed cargo row, skipped", lineNum))
			continue
		}

		weightT, err := parseFloat(fields[1], 0.1, 1e6, "weight")
		if err != nil {
			return result, fmt.Errorf("line %d: %w", lineNum, err)
		}

		dims, err := ParseDimensions(fields[2])
		if err != nil {
			return result, fmt.Errorf("line %d: cargo %q: %w", lineNum, fields[0], err)
		}

		result.Cargo = append(result.Cargo, model.NewCargo(
			fields[0],
			weightT*1000.0,
			dims[0], dims[1], dims[2],
			model.CargoType(fields[3]),
		))
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading cargo manifest: %w", err)
	}
	return result, nil
}

// ParseDimensions parses an "LxWxH" triple in metres.
func ParseDimensions(s string) ([3]float64, error) {
	var dims [3]float64
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return dims, fmt.Errorf("invalid dimensions %q (expected LxWxH)", s)
	}
	for i, part := range parts {
		d, err := parseFloat(part, 0.1, 1e4, "dimension")
		if err != nil {
			return dims, err
		}
		dims[i] = d
	}
	return dims, nil
}

// LoadManifest reads a cargo manifest from a file, or stdin when the path
// is "-". CSV and XLSX files are routed to the importer based on their
// extension.
func LoadManifest(path string) (ManifestResult, error) {
	switch {
	case path == "-":
		return ParseManifest(os.Stdin)
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		data, err := os.ReadFile(path)
		if err != nil {
			return ManifestResult{}, fmt.Errorf("opening cargo manifest: %w", err)
		}
		return ImportCSV(data)
	case strings.HasSuffix(strings.ToLower(path), ".xlsx"):
		return ImportXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return ManifestResult{}, fmt.Errorf("opening cargo manifest: %w", err)
	}
	defer f.Close()
	return ParseManifest(f)
}
