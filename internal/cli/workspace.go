package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/logger"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/reftable"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/reportstore"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/workspacefinder"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/yamlchart"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	charts  ports.ChartLoader
	catalog ports.ChartCatalog

	tables ports.ReferenceTableLoader
	store  ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	chartLoader := yamlchart.NewLoader(
		root,
		yamlchart.WithChartsDir(cfg.Charts.Dir),
	)

	tableLoader := reftable.NewLoader(
		reftable.WithSheet(cfg.Reference.Sheet),
		reftable.WithPositionColumn(cfg.Reference.PositionColumn),
		reftable.WithLogger(logger.L()),
	)

	store := reportstore.NewStore(root, cfg)

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		charts:  chartLoader,
		catalog: chartLoader,
		tables:  tableLoader,
		store:   store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `synastry init`): %w", wd, err)
	}
	return root, nil
}

// resolveReferencePath returns the table path: the flag if given, else the
// configured one. Relative paths are taken from the workspace root.
func resolveReferencePath(ws *workspaceCtx, arg string) string {
	p := strings.TrimSpace(arg)
	if p == "" {
		p = ws.cfg.Reference.Path
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	return filepath.Clean(p)
}

// chartArg falls back to the configured default chart name.
func chartArg(arg, fallback string) string {
	if s := strings.TrimSpace(arg); s != "" {
		return s
	}
	return fallback
}
