package reftable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "ref.csv", "\ufeffPosition,Trine1,Trine2,Opposition\n"+
		"♈ 0°0′,♌ 0°0′,♐ 0°0′,♎ 0°0′\n"+
		"♈ 0°1′,♌ 0°1′,garbage,\n")

	tbl, st, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, 3, st.Columns)
	assert.Equal(t, 4, st.Cells)
	assert.Equal(t, 1, st.Absent)

	got, ok := tbl.Target(0, "Trine1")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate(7200), got)

	got, ok = tbl.Target(0, "Opposition")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate(10800), got)

	_, ok = tbl.Target(1, "Trine2")
	assert.False(t, ok, "malformed cell must be absent")
	_, ok = tbl.Target(1, "Opposition")
	assert.False(t, ok, "empty cell must be absent")
}

func TestLoadTSV_NamedPositionColumn(t *testing.T) {
	path := writeFile(t, "ref.tsv", "Sign\tPos\tSquare1\n"+
		"Leo\t♌ 0°0′\t♏ 0°0′\n")

	tbl, err := NewLoader(WithPositionColumn("pos")).LoadReferenceTable(path)
	require.NoError(t, err)

	got, ok := tbl.Target(7200, "Square1")
	require.True(t, ok)
	assert.Equal(t, domain.Encode(domain.Scorpio, 0, 0), got)
	assert.True(t, tbl.HasVariant("Sign"), "non-position columns are kept as-is")
}

func TestLoad_OrdinalFallback(t *testing.T) {
	path := writeFile(t, "ref.csv", "Position,Trine1\n"+
		"row zero,♌ 0°0′\n"+
		",♌ 0°1′\n")

	tbl, st, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, st.OrdinalRows)

	got, ok := tbl.Target(1, "Trine1")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate(7201), got)
}

func TestLoad_MissingPositionColumn(t *testing.T) {
	path := writeFile(t, "ref.csv", "A,B\n")

	_, err := NewLoader(WithPositionColumn("Position")).LoadReferenceTable(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "ref.json", "{}")

	_, err := NewLoader().LoadReferenceTable(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadReferenceTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Aspects.xlsx")

	f := excelize.NewFile()
	idx, err := f.NewSheet("Aspects")
	require.NoError(t, err)
	f.SetActiveSheet(idx)
	require.NoError(t, f.SetSheetRow("Aspects", "A1", &[]any{"Position", "Trine1", "Sextile1"}))
	require.NoError(t, f.SetSheetRow("Aspects", "A2", &[]any{"♈ 0°0′", "♌ 0°0′", 3600}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, st, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Rows)
	assert.Equal(t, 1, st.Absent, "numeric cells are not positions")

	got, ok := tbl.Target(0, "Trine1")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate(7200), got)

	_, ok = tbl.Target(0, "Sextile1")
	assert.False(t, ok)
}

func TestLoadXLSX_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Aspects.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewLoader(WithSheet("Nope")).LoadReferenceTable(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}
