package usecase

import (
	"context"
	"fmt"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase/match"
)

// Validation summarizes a dry run: inputs load, and which aspect variants
// the reference table cannot answer.
type Validation struct {
	ChartA         domain.Chart
	ChartB         domain.Chart
	ReferenceRows  int
	Variants       []string
	MissingAspects []string
	// Unplaced lists chart points whose coordinate has no row in the table.
	Unplaced []string
}

type ValidateCharts struct {
	charts ports.ChartLoader
	tables ports.ReferenceTableLoader
	policy domain.OrbPolicy
}

func NewValidateCharts(cl ports.ChartLoader, tl ports.ReferenceTableLoader) *ValidateCharts {
	return &ValidateCharts{
		charts: cl,
		tables: tl,
		policy: domain.DefaultOrbPolicy(),
	}
}

// Execute loads everything a run needs without computing aspects. Load
// failures are errors; coverage gaps are reported in the Validation.
func (uc *ValidateCharts) Execute(ctx context.Context, req RunRequest) (Validation, error) {
	var v Validation

	a, err := uc.charts.LoadChart(req.ChartA)
	if err != nil {
		return v, err
	}
	b, err := uc.charts.LoadChart(req.ChartB)
	if err != nil {
		return v, err
	}
	if err := ctx.Err(); err != nil {
		return v, err
	}

	tbl, err := uc.tables.LoadReferenceTable(req.ReferencePath)
	if err != nil {
		return v, err
	}

	m := match.NewMatcher(tbl, uc.policy)
	v = Validation{
		ChartA:         a,
		ChartB:         b,
		ReferenceRows:  tbl.Rows(),
		Variants:       m.Variants(),
		MissingAspects: m.Missing(),
	}

	// Only A's coordinates are looked up; B is compared by distance.
	for _, p := range a.Points {
		if !rowPresent(tbl, p.Coordinate, v.Variants) {
			v.Unplaced = append(v.Unplaced, fmt.Sprintf("%s (%s)", p.Label, p.Coordinate))
		}
	}
	return v, nil
}

func rowPresent(tbl *domain.ReferenceTable, c domain.Coordinate, variants []string) bool {
	for _, name := range variants {
		if _, ok := tbl.Target(c, name); ok {
			return true
		}
	}
	return len(variants) == 0
}
