package reftable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

var errNoHeader = errors.New("reference table has no header row")

// Build turns raw rows (header first) into a reference table. Every column
// other than the position column is kept as a variant column under its
// trimmed header; the matcher decides which of them it uses.
//
// A row is keyed by its parsed position cell. When that cell is unusable the
// row's ordinal (0-based, header excluded) is used, which matches tables laid
// out one row per arc-minute. A row whose key an earlier row already used
// overwrites the cells it sets and is counted in Stats.DuplicateRows.
func Build(rows [][]string, positionColumn string) (*domain.ReferenceTable, Stats, error) {
	if len(rows) == 0 {
		return nil, Stats{}, errNoHeader
	}

	header := rows[0]
	posIdx, err := findPositionColumn(header, positionColumn)
	if err != nil {
		return nil, Stats{}, err
	}

	type column struct {
		idx     int
		variant string
	}
	var cols []column
	b := domain.NewReferenceTableBuilder()
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == posIdx || name == "" {
			continue
		}
		cols = append(cols, column{idx: i, variant: name})
		b.AddColumn(name)
	}

	st := Stats{Columns: len(cols)}
	keys := make(map[domain.Coordinate]struct{}, len(rows)-1)
	for ordinal, row := range rows[1:] {
		source, ok := domain.ParsePosition(cellAt(row, posIdx))
		if !ok || source < 0 || source >= domain.CircleMinutes {
			if ordinal >= domain.CircleMinutes {
				st.SkippedRows++
				continue
			}
			source = domain.Coordinate(ordinal)
			st.OrdinalRows++
		}
		if _, dup := keys[source]; dup {
			st.DuplicateRows++
		}
		keys[source] = struct{}{}
		b.AddRow(source)

		for _, c := range cols {
			raw := cellAt(row, c.idx)
			target, ok := domain.ParsePosition(raw)
			if !ok {
				if strings.TrimSpace(raw) != "" {
					st.Absent++
				}
				continue
			}
			b.Set(source, c.variant, target)
			st.Cells++
		}
	}

	tbl := b.Build()
	st.Rows = tbl.Rows()
	return tbl, st, nil
}

func findPositionColumn(header []string, want string) (int, error) {
	want = strings.TrimSpace(want)
	if want == "" {
		if len(header) == 0 {
			return 0, errNoHeader
		}
		return 0, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), want) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("position column %q not found in header %v: %w", want, header, domain.ErrInvalidConfig)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
