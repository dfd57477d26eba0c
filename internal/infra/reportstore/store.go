package reportstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
)

const defaultExportsDir = "exports"

type Store struct {
	rootDir    string
	exportsDir string
	bom        bool
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*Store)

// WithIndex enables a simple JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides report ID generation.
func WithIDFunc(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func NewStore(root string, cfg domain.Config, opts ...Option) *Store {
	dir := cfg.Exports.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}

	s := &Store{
		rootDir:    root,
		exportsDir: dir,
		bom:        cfg.Exports.BOM,
		writeIndex: cfg.Exports.Index,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*Store)(nil)

// SaveReport writes <ts>_<slug>.json and <ts>_<slug>.csv under the exports
// directory and returns the report ID.
func (s *Store) SaveReport(report domain.Report) (string, error) {
	dir := filepath.Join(s.rootDir, s.exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := report
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	ts := toSave.StartedAt.UTC()

	slug := slugify(toSave.ChartA + " vs " + toSave.ChartB)
	if slug == "" || slug == "vs" {
		slug = "synastry"
	}
	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if err := writeAtomic(filepath.Join(dir, base+".json"), b); err != nil {
		return "", err
	}

	var csvBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, toSave.Results, s.bom); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.csv",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if err := writeAtomic(filepath.Join(dir, base+".csv"), csvBuf.Bytes()); err != nil {
		return "", err
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, base, toSave)
	}

	return toSave.ID, nil
}

// Atomic-ish write: tmp then rename.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (s *Store) appendIndex(dir, base string, report domain.Report) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		ChartA    string    `json:"chart_a"`
		ChartB    string    `json:"chart_b"`
		Aspects   int       `json:"aspects"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        report.ID,
		File:      base,
		ChartA:    report.ChartA,
		ChartB:    report.ChartB,
		Aspects:   len(report.Results),
		StartedAt: report.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
