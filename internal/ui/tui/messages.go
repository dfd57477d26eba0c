package tui

import (
	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

// workspaceLoadedMsg carries the reference table, loaded once per session.
type workspaceLoadedMsg struct {
	root string
	ws   *workspace
	err  error
}

type chartsLoadedMsg struct {
	a   domain.Chart
	b   domain.Chart
	err error
}

type exportDoneMsg struct {
	id  string
	err error
}
