package ports

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

type ChartCatalog interface {
	ListCharts(root string) ([]domain.ChartRef, error)
}
