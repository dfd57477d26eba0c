package reportstore

import (
	"encoding/csv"
	"io"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

// utf8BOM lets spreadsheet applications detect UTF-8 (glyphs and ° survive).
const utf8BOM = "\ufeff"

var csvHeader = []string{"A", "B", "Aspect", "Orb"}

// WriteCSV writes results as A,B,Aspect,Orb rows.
func WriteCSV(w io.Writer, results []domain.SynastryResult, bom bool) error {
	if bom {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.LabelA, r.LabelB, r.Aspect, r.OrbString()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
