package ports

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

// ChartLoader loads a person's chart from a source (e.g., filesystem).
type ChartLoader interface {
	LoadChart(nameOrPath string) (domain.Chart, error)
}
