package tui

import (
	"log/slog"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
