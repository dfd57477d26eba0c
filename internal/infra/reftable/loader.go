// Package reftable reads the precomputed aspect reference table from a
// spreadsheet (.xlsx) or delimited text (.csv, .tsv).
//
// The load is total: malformed or non-position cells become absent values and
// never fail the load. Only I/O problems and a missing position column do.
package reftable

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
)

const defaultSheet = "Aspects"

type Loader struct {
	sheet          string
	positionColumn string
	log            *slog.Logger
}

type Option func(*Loader)

// WithSheet selects the worksheet for spreadsheet sources.
func WithSheet(name string) Option {
	return func(l *Loader) { l.sheet = name }
}

// WithPositionColumn selects the source-position column by header.
// Empty means the first column.
func WithPositionColumn(header string) Option {
	return func(l *Loader) { l.positionColumn = header }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		sheet: defaultSheet,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ReferenceTableLoader = (*Loader)(nil)

// Stats summarizes what a load kept and dropped.
type Stats struct {
	Rows          int
	Columns       int
	Cells         int
	Absent        int
	OrdinalRows   int
	SkippedRows   int
	DuplicateRows int
}

func (l *Loader) LoadReferenceTable(path string) (*domain.ReferenceTable, error) {
	tbl, _, err := l.Load(path)
	return tbl, err
}

// Load reads path and also reports load statistics.
func (l *Loader) Load(path string) (*domain.ReferenceTable, Stats, error) {
	rows, err := l.readRows(path)
	if err != nil {
		return nil, Stats{}, err
	}

	tbl, st, err := Build(rows, l.positionColumn)
	if err != nil {
		return nil, Stats{}, &domain.OpError{
			Op:   "reftable.build",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	l.log.Info("reftable.loaded",
		"path", path,
		"rows", st.Rows,
		"columns", st.Columns,
		"cells", st.Cells,
		"absent", st.Absent,
		"ordinal_rows", st.OrdinalRows,
		"skipped_rows", st.SkippedRows,
		"duplicate_rows", st.DuplicateRows,
	)
	return tbl, st, nil
}

func (l *Loader) readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return l.readSpreadsheet(path)
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv":
		return readDelimited(path, '\t')
	default:
		return nil, &domain.OpError{
			Op:   "reftable.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported reference table format %q (expected .xlsx, .csv or .tsv)", filepath.Ext(path)),
		}
	}
}

func (l *Loader) readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reftable.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, &domain.OpError{
			Op:   "reftable.sheet",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("sheet %q not found (have %v): %w", sheet, f.GetSheetList(), domain.ErrNotFound),
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reftable.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return rows, nil
}

func readDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reftable.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reftable.read",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}
