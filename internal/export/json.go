// Package export renders a completed stowage plan to the supported
// output representations. The core engine has no dependency on any of
// these; they consume the ship and analysis result read-only.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/piwi3910/cargoforge/internal/model"
)

// ShipInfo mirrors the ship section of the JSON plan schema.
type ShipInfo struct {
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	MaxWeight       float64 `json:"max_weight"`
	LightshipWeight float64 `json:"lightship_weight"`
	LightshipKG     float64 `json:"lightship_kg"`
}

// CargoInfo is one manifest item in the JSON plan. Position is null for
// unplaced items.
type CargoInfo struct {
	ID         string          `json:"id"`
	Weight     float64         `json:"weight"`
	Dimensions [3]float64      `json:"dimensions"`
	Type       string          `json:"type"`
	Position   *model.Position `json:"position"`
	Placed     bool            `json:"placed"`
}

// CGInfo is the center-of-gravity section of the analysis.
type CGInfo struct {
	LongitudinalPercent float64 `json:"longitudinal_percent"`
	TransversePercent   float64 `json:"transverse_percent"`
}

// AnalysisInfo is the analysis section of the JSON plan. MetacentricHeight
// is null when the plan was rejected for being overweight.
type AnalysisInfo struct {
	PlacedCount         int      `json:"placed_count"`
	TotalCount          int      `json:"total_count"`
	TotalCargoWeight    float64  `json:"total_cargo_weight"`
	TotalShipWeight     float64  `json:"total_ship_weight"`
	CapacityUsedPercent float64  `json:"capacity_used_percent"`
	CenterOfGravity     CGInfo   `json:"center_of_gravity"`
	MetacentricHeight   *float64 `json:"metacentric_height"`
	StabilityStatus     string   `json:"stability_status"`
	BalanceStatus       string   `json:"balance_status"`
	Overweight          bool     `json:"overweight"`
}

// Document is the canonical machine-readable stowage plan, consumed by
// the analyze subcommand and the saved-plan store.
type Document struct {
	Ship     ShipInfo     `json:"ship"`
	Cargo    []CargoInfo  `json:"cargo"`
	Analysis AnalysisInfo `json:"analysis"`
}

// BuildDocument assembles the plan document from a loaded ship and its
// analysis result.
func BuildDocument(ship *model.Ship, result model.AnalysisResult) Document {
	doc := Document{
		Ship: ShipInfo{
			Length:          ship.Length,
			Width:           ship.Width,
			MaxWeight:       ship.MaxWeightKg,
			LightshipWeight: ship.LightshipWeightKg,
			LightshipKG:     ship.LightshipKG,
		},
	}

	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		doc.Cargo = append(doc.Cargo, CargoInfo{
			ID:         c.ID,
			Weight:     c.WeightKg,
			Dimensions: [3]float64{c.Length, c.Width, c.Height},
			Type:       string(c.Type),
			Position:   c.Position,
			Placed:     c.Placed(),
		})
	}

	totalShipWeight := ship.LightshipWeightKg + result.TotalCargoWeightKg
	doc.Analysis = AnalysisInfo{
		PlacedCount:         result.PlacedItemCount,
		TotalCount:          len(ship.Cargo),
		TotalCargoWeight:    result.TotalCargoWeightKg,
		TotalShipWeight:     totalShipWeight,
		CapacityUsedPercent: totalShipWeight / ship.MaxWeightKg * 100.0,
		CenterOfGravity: CGInfo{
			LongitudinalPercent: result.CGLongitudinalPct,
			TransversePercent:   result.CGTransversePct,
		},
		StabilityStatus: result.StabilityStatus(),
		BalanceStatus:   result.BalanceStatus(),
		Overweight:      result.Overweight(),
	}
	if !result.Overweight() {
		gm := result.GM
		doc.Analysis.MetacentricHeight = &gm
	}
	return doc
}

// WriteJSON writes the plan document as indented JSON.
func WriteJSON(w io.Writer, ship *model.Ship, result model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocument(ship, result))
}

// WriteDocument writes an already-built plan document as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadDocument decodes a plan document previously written by WriteJSON.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decoding plan document: %w", err)
	}
	return doc, nil
}
