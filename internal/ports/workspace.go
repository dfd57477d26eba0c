package ports

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
