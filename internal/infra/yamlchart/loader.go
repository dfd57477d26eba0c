package yamlchart

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/config"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
)

type Loader struct {
	rootDir   string
	chartsDir string
}

type Option func(*Loader)

func WithChartsDir(dir string) Option {
	return func(l *Loader) { l.chartsDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:   root,
		chartsDir: "charts",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.ChartLoader  = (*Loader)(nil)
	_ ports.ChartCatalog = (*Loader)(nil)
)

// LoadChart accepts either a chart name (e.g., "alice") or a path to a YAML file.
func (l *Loader) LoadChart(nameOrPath string) (domain.Chart, error) {
	return config.LoadChart(l.resolve(nameOrPath))
}

func (l *Loader) resolve(nameOrPath string) string {
	if hasYAMLExt(nameOrPath) || strings.Contains(nameOrPath, string(filepath.Separator)) || strings.Contains(nameOrPath, "/") {
		p := filepath.Clean(nameOrPath)
		if !filepath.IsAbs(p) && !fileExists(p) {
			for _, alt := range []string{
				filepath.Join(l.rootDir, p),
				filepath.Join(l.rootDir, l.chartsDir, p),
			} {
				if fileExists(alt) {
					return alt
				}
			}
		}
		return p
	}

	dir := filepath.Join(l.rootDir, l.chartsDir)
	yml := filepath.Join(dir, nameOrPath+".yml")
	if !fileExists(filepath.Join(dir, nameOrPath+".yaml")) && fileExists(yml) {
		return yml
	}
	return filepath.Join(dir, nameOrPath+".yaml")
}

func (l *Loader) ListCharts(root string) ([]domain.ChartRef, error) {
	dir := filepath.Join(root, l.chartsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlchart.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ChartRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		ref := domain.ChartRef{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: p,
		}
		// Unreadable charts are still listed; validate reports the details.
		if chart, err := config.LoadChart(p); err == nil {
			ref.Name = chart.Name
			ref.Points = len(chart.Points)
		}
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
