package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/piwi3910/cargoforge/internal/model"
)

// WriteCSV writes one row per manifest item: identity, weight in tonnes,
// dimensions, the committed position (blank for unplaced items) and the
// placement outcome.
func WriteCSV(w io.Writer, cargo []model.Cargo) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "type", "weight_t", "length_m", "width_m", "height_m", "pos_x", "pos_y", "pos_z", "placed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, c := range cargo {
		row := []string{
			c.ID,
			string(c.Type),
			f(c.WeightKg / 1000.0),
			f(c.Length), f(c.Width), f(c.Height),
			"", "", "",
			strconv.FormatBool(c.Placed()),
		}
		if c.Position != nil {
			row[6] = f(c.Position.X)
			row[7] = f(c.Position.Y)
			row[8] = f(c.Position.Z)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
