package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/reftable"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/reportstore"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/workspacefinder"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/yamlchart"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase/match"
)

// workspace is everything the session needs from disk, resolved once.
type workspace struct {
	cfg           domain.Config
	referencePath string
	rows          int
	matcher       *match.Matcher
	charts        ports.ChartLoader
	store         ports.ReportStore
}

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdOpenWorkspace loads the config and the reference table and builds the
// matcher the session keeps until it exits.
func cmdOpenWorkspace(root string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if log == nil {
			log = slog.Default()
		}

		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return workspaceLoadedMsg{root: root, err: err}
		}

		refPath := cfg.Reference.Path
		if !filepath.IsAbs(refPath) {
			refPath = filepath.Join(root, refPath)
		}

		loader := reftable.NewLoader(
			reftable.WithSheet(cfg.Reference.Sheet),
			reftable.WithPositionColumn(cfg.Reference.PositionColumn),
			reftable.WithLogger(log),
		)
		tbl, err := loader.LoadReferenceTable(refPath)
		if err != nil {
			log.Error("tui.reference.failed", "path", refPath, "err", err)
			return workspaceLoadedMsg{root: root, err: err}
		}

		return workspaceLoadedMsg{
			root: root,
			ws: &workspace{
				cfg:           cfg,
				referencePath: refPath,
				rows:          tbl.Rows(),
				matcher:       match.NewMatcher(tbl, domain.DefaultOrbPolicy()),
				charts:        yamlchart.NewLoader(root, yamlchart.WithChartsDir(cfg.Charts.Dir)),
				store:         reportstore.NewStore(root, cfg),
			},
		}
	}
}

func cmdLoadCharts(charts ports.ChartLoader, nameA, nameB string) tea.Cmd {
	return func() tea.Msg {
		a, err := charts.LoadChart(nameA)
		if err != nil {
			return chartsLoadedMsg{err: err}
		}
		b, err := charts.LoadChart(nameB)
		if err != nil {
			return chartsLoadedMsg{err: err}
		}
		return chartsLoadedMsg{a: a, b: b}
	}
}

func cmdExport(store ports.ReportStore, report domain.Report, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		id, err := store.SaveReport(report)
		if log != nil {
			if err != nil {
				log.Error("tui.export.failed", "err", err)
			} else {
				log.Info("tui.export.ok", "id", id, "aspects", len(report.Results))
			}
		}
		return exportDoneMsg{id: id, err: err}
	}
}
