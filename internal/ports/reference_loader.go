package ports

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

// ReferenceTableLoader reads a reference table once into an immutable structure.
type ReferenceTableLoader interface {
	LoadReferenceTable(path string) (*domain.ReferenceTable, error)
}
