package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// columnMapping maps semantic column roles to their indices in the data.
// An index of -1 means the column is absent.
type columnMapping struct {
	ID     int
	Weight int
	Dims   int
	Length int
	Width  int
	Height int
	Type   int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase). A manifest may carry either a combined "LxWxH" dims
// column or separate length/width/height columns.
var headerAliases = map[string][]string{
	"id":     {"id", "cargo", "cargo id", "name", "label", "item"},
	"weight": {"weight", "weight_t", "weight (t)", "tonnes", "wt"},
	"dims":   {"dims", "dimensions", "size", "lxwxh"},
	"length": {"length", "length_m", "l"},
	"width":  {"width", "width_m", "w", "beam"},
	"height": {"height", "height_m", "h"},
	"type":   {"type", "class", "category", "cargo type"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab and pipe; the delimiter producing the most
// consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		if weighted := score*10 + firstCols; weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// mapColumns resolves the header row to a column mapping using the alias
// table, case-insensitively.
func mapColumns(header []string) columnMapping {
	m := columnMapping{ID: -1, Weight: -1, Dims: -1, Length: -1, Width: -1, Height: -1, Type: -1}
	match := func(cell, canonical string) bool {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range headerAliases[canonical] {
			if cell == alias {
				return true
			}
		}
		return false
	}
	for i, cell := range header {
		switch {
		case m.ID < 0 && match(cell, "id"):
			m.ID = i
		case m.Weight < 0 && match(cell, "weight"):
			m.Weight = i
		case m.Dims < 0 && match(cell, "dims"):
			m.Dims = i
		case m.Length < 0 && match(cell, "length"):
			m.Length = i
		case m.Width < 0 && match(cell, "width"):
			m.Width = i
		case m.Height < 0 && match(cell, "height"):
			m.Height = i
		case m.Type < 0 && match(cell, "type"):
			m.Type = i
		}
	}
	return m
}

func (m columnMapping) valid() bool {
	hasDims := m.Dims >= 0 || (m.Length >= 0 && m.Width >= 0 && m.Height >= 0)
	return m.ID >= 0 && m.Weight >= 0 && hasDims
}

// importRows converts tabular data (header row first) into cargo items.
func importRows(rows [][]string) (ManifestResult, error) {
	var result ManifestResult
	if len(rows) < 2 {
		return result, fmt.Errorf("manifest has no data rows")
	}

	m := mapColumns(rows[0])
	if !m.valid() {
		return result, fmt.Errorf("manifest header missing required columns (need id, weight and dimensions)")
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for n, row := range rows[1:] {
		rowNum := n + 2
		id := cell(row, m.ID)
		if id == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("row %d: empty cargo id, skipped", rowNum))
			continue
		}

		weightT, err := parseFloat(cell(row, m.Weight), 0.1, 1e6, "weight")
		if err != nil {
			return result, fmt.Errorf("row %d: %w", rowNum, err)
		}

		var dims [3]float64
		if m.Dims >= 0 {
			dims, err = ParseDimensions(cell(row, m.Dims))
			if err != nil {
				return result, fmt.Errorf("row %d: %w", rowNum, err)
			}
		} else {
			for i, idx := range []int{m.Length, m.Width, m.Height} {
				dims[i], err = parseFloat(cell(row, idx), 0.1, 1e4, "dimension")
				if err != nil {
					return result, fmt.Errorf("row %d: %w", rowNum, err)
				}
			}
		}

		typ := model.CargoType(strings.ToLower(cell(row, m.Type)))
		result.Cargo = append(result.Cargo, model.NewCargo(
			id, weightT*1000.0, dims[0], dims[1], dims[2], typ,
		))
	}
	return result, nil
}

// ImportCSV parses a CSV cargo manifest with automatic delimiter
// detection and flexible, case-insensitive headers.
func ImportCSV(data []byte) (ManifestResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return ManifestResult{}, fmt.Errorf("reading CSV manifest: %w", err)
	}
	return importRows(rows)
}

// ImportXLSX parses the first sheet of an Excel workbook as a cargo
// manifest, using the same header mapping as the CSV importer.
func ImportXLSX(path string) (ManifestResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ManifestResult{}, fmt.Errorf("opening XLSX manifest: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ManifestResult{}, fmt.Errorf("XLSX manifest has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ManifestResult{}, fmt.Errorf("reading XLSX manifest: %w", err)
	}
	return importRows(rows)
}
