package export

import "github.com/piwi3910/cargoforge/internal/model"

// Filter narrows which manifest items the formatters show. The zero value
// passes everything through.
type Filter struct {
	OnlyPlaced bool
	OnlyFailed bool
	Type       model.CargoType
}

// Apply returns the cargo items matching the filter, preserving order.
func (f Filter) Apply(cargo []model.Cargo) []model.Cargo {
	if !f.OnlyPlaced && !f.OnlyFailed && f.Type == "" {
		return cargo
	}
	out := make([]model.Cargo, 0, len(cargo))
	for _, c := range cargo {
		if f.OnlyPlaced && !c.Placed() {
			continue
		}
		if f.OnlyFailed && c.Placed() {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		out = append(out, c)
	}
	return out
}
