// Package wizard provides an interactive form flow for building a ship
// configuration and cargo manifest from scratch in the terminal.
package wizard

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/parser"
)

// Result holds the user's answers: the ship parameters and manifest rows
// ready to be written out and fed to the placement engine.
type Result struct {
	Ship  model.Ship
	Cargo []model.Cargo
}

// validatePositive rejects values that do not parse as a positive number.
func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// mustFloat parses a value already accepted by validatePositive.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// Run walks the user through ship setup and cargo entry.
func Run() (Result, error) {
	var res Result

	shipLength := "200"
	shipWidth := "32"
	maxWeight := "50000"
	lightWeight := "15000"
	lightKG := "8"

	shipForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ship length (m)").
				Value(&shipLength).
				Validate(validatePositive),
			huh.NewInput().
				Title("Ship width (m)").
				Value(&shipWidth).
				Validate(validatePositive),
			huh.NewInput().
				Title("Maximum weight (tonnes)").
				Value(&maxWeight).
				Validate(validatePositive),
			huh.NewInput().
				Title("Lightship weight (tonnes)").
				Value(&lightWeight).
				Validate(validatePositive),
			huh.NewInput().
				Title("Lightship KG (m above keel)").
				Value(&lightKG).
				Validate(validatePositive),
		),
	)
	if err := shipForm.Run(); err != nil {
		return res, err
	}

	res.Ship = model.Ship{
		Length:            mustFloat(shipLength),
		Width:             mustFloat(shipWidth),
		MaxWeightKg:       mustFloat(maxWeight) * 1000.0,
		LightshipWeightKg: mustFloat(lightWeight) * 1000.0,
		LightshipKG:       mustFloat(lightKG),
	}

	for {
		var more bool
		prompt := "Add a cargo item?"
		if len(res.Cargo) > 0 {
			prompt = fmt.Sprintf("Add another cargo item? (%d so far)", len(res.Cargo))
		}
		if err := huh.NewConfirm().Title(prompt).Value(&more).Run(); err != nil {
			return res, err
		}
		if !more {
			break
		}

		c, err := promptCargo(len(res.Cargo) + 1)
		if err != nil {
			return res, err
		}
		res.Cargo = append(res.Cargo, c)
	}

	return res, nil
}

// promptCargo collects one manifest row.
func promptCargo(n int) (model.Cargo, error) {
	id := fmt.Sprintf("CARGO-%03d-%s", n, uuid.NewString()[:8])
	weight := "10"
	dims := "6x2.4x2.6"
	cargoType := string(model.TypeStandard)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cargo ID").
				Value(&id).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("ID is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Weight (tonnes)").
				Value(&weight).
				Validate(validatePositive),
			huh.NewInput().
				Title("Dimensions (LxWxH in m)").
				Value(&dims).
				Validate(func(s string) error {
					_, err := parser.ParseDimensions(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Cargo type").
				Options(
					huh.NewOption("Standard", string(model.TypeStandard)),
					huh.NewOption("Hazardous", string(model.TypeHazardous)),
					huh.NewOption("Reefer", string(model.TypeReefer)),
					huh.NewOption("Fragile", string(model.TypeFragile)),
					huh.NewOption("Heavy", string(model.TypeHeavy)),
				).
				Value(&cargoType),
		),
	)
	if err := form.Run(); err != nil {
		return model.Cargo{}, err
	}

	d, err := parser.ParseDimensions(dims)
	if err != nil {
		return model.Cargo{}, err
	}
	return model.Cargo{
		ID:       strings.TrimSpace(id),
		WeightKg: mustFloat(weight) * 1000.0,
		Length:   d[0],
		Width:    d[1],
		Height:   d[2],
		Type:     model.CargoType(cargoType),
	}, nil
}

// WriteFiles persists the wizard answers in the same formats the loader
// reads back: a key=value ship config and a whitespace manifest.
func WriteFiles(res Result, shipPath, manifestPath string) error {
	var ship strings.Builder
	ship.WriteString("# Ship configuration generated by cargoforge interactive\n")
	fmt.Fprintf(&ship, "length_m=%g\n", res.Ship.Length)
	fmt.Fprintf(&ship, "width_m=%g\n", res.Ship.Width)
	fmt.Fprintf(&ship, "max_weight_tonnes=%g\n", res.Ship.MaxWeightKg/1000.0)
	fmt.Fprintf(&ship, "lightship_weight_tonnes=%g\n", res.Ship.LightshipWeightKg/1000.0)
	fmt.Fprintf(&ship, "lightship_kg_m=%g\n", res.Ship.LightshipKG)
	if err := os.WriteFile(shipPath, []byte(ship.String()), 0644); err != nil {
		return fmt.Errorf("writing ship config: %w", err)
	}

	var manifest strings.Builder
	manifest.WriteString("# id weight_tonnes LxWxH type\n")
	for _, c := range res.Cargo {
		fmt.Fprintf(&manifest, "%s %g %gx%gx%g %s\n",
			c.ID, c.WeightKg/1000.0, c.Length, c.Width, c.Height, c.Type)
	}
	if err := os.WriteFile(manifestPath, []byte(manifest.String()), 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
