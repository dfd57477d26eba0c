package domain

import "sort"

type refCell struct {
	target int32
	set    bool
}

// ReferenceTable maps a source coordinate and an aspect variant to the
// coordinate that completes that exact aspect. It is immutable once built and
// safe to share between readers.
type ReferenceTable struct {
	columns map[string][]refCell
	rows    int
}

// Target returns the exact-aspect coordinate for (source, variant), or
// ok=false when the table has no value for that cell.
func (t *ReferenceTable) Target(source Coordinate, variant string) (Coordinate, bool) {
	if t == nil || source < 0 || source >= CircleMinutes {
		return 0, false
	}
	col, ok := t.columns[variant]
	if !ok {
		return 0, false
	}
	c := col[source]
	if !c.set {
		return 0, false
	}
	return Coordinate(c.target), true
}

// HasVariant reports whether the table carries a column for variant.
func (t *ReferenceTable) HasVariant(variant string) bool {
	if t == nil {
		return false
	}
	_, ok := t.columns[variant]
	return ok
}

// Variants returns the column names, sorted.
func (t *ReferenceTable) Variants() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.columns))
	for v := range t.columns {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Rows is the number of distinct source coordinates that were loaded.
func (t *ReferenceTable) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// ReferenceTableBuilder accumulates cells before freezing them into a table.
// A builder is single-use: Build hands its storage to the table.
type ReferenceTableBuilder struct {
	columns map[string][]refCell
	seen    map[Coordinate]struct{}
}

func NewReferenceTableBuilder() *ReferenceTableBuilder {
	return &ReferenceTableBuilder{
		columns: map[string][]refCell{},
		seen:    map[Coordinate]struct{}{},
	}
}

// AddColumn declares a variant column even if none of its cells are set.
func (b *ReferenceTableBuilder) AddColumn(variant string) {
	if _, ok := b.columns[variant]; !ok {
		b.columns[variant] = make([]refCell, CircleMinutes)
	}
}

// AddRow records that a source row exists. It returns false when the source
// is outside the circle.
func (b *ReferenceTableBuilder) AddRow(source Coordinate) bool {
	if source < 0 || source >= CircleMinutes {
		return false
	}
	b.seen[source] = struct{}{}
	return true
}

// Set stores target for (source, variant). It returns false when the source
// is outside the circle.
func (b *ReferenceTableBuilder) Set(source Coordinate, variant string, target Coordinate) bool {
	if !b.AddRow(source) {
		return false
	}
	b.AddColumn(variant)
	b.columns[variant][source] = refCell{target: int32(target), set: true}
	return true
}

func (b *ReferenceTableBuilder) Build() *ReferenceTable {
	t := &ReferenceTable{
		columns: b.columns,
		rows:    len(b.seen),
	}
	b.columns = map[string][]refCell{}
	b.seen = map[Coordinate]struct{}{}
	return t
}
