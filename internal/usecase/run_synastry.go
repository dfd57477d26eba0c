package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ports"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase/match"
)

// RunRequest names the two charts and the reference table of one run.
type RunRequest struct {
	ChartA        string
	ChartB        string
	ReferencePath string
	// Save exports the report through the configured store.
	Save bool
}

type RunSynastry struct {
	charts ports.ChartLoader
	tables ports.ReferenceTableLoader
	store  ports.ReportStore
	policy domain.OrbPolicy
	log    *slog.Logger
	now    func() time.Time
}

type RunOption func(*RunSynastry)

func WithReportStore(s ports.ReportStore) RunOption {
	return func(uc *RunSynastry) { uc.store = s }
}

func WithOrbPolicy(p domain.OrbPolicy) RunOption {
	return func(uc *RunSynastry) {
		if p != nil {
			uc.policy = p
		}
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunSynastry) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunSynastry) { uc.now = now }
}

func NewRunSynastry(cl ports.ChartLoader, tl ports.ReferenceTableLoader, opts ...RunOption) *RunSynastry {
	uc := &RunSynastry{
		charts: cl,
		tables: tl,
		policy: domain.DefaultOrbPolicy(),
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads both charts and the reference table, computes every aspect
// between A and B, and optionally saves the report. The returned ID is empty
// when the report was not saved.
func (uc *RunSynastry) Execute(ctx context.Context, req RunRequest) (domain.Report, string, error) {
	a, err := uc.charts.LoadChart(req.ChartA)
	if err != nil {
		return domain.Report{}, "", err
	}
	b, err := uc.charts.LoadChart(req.ChartB)
	if err != nil {
		return domain.Report{}, "", err
	}

	tbl, err := uc.tables.LoadReferenceTable(req.ReferencePath)
	if err != nil {
		return domain.Report{}, "", err
	}

	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	m := match.NewMatcher(tbl, uc.policy)
	report := BuildReport(m, a, b, uc.now)
	report.ReferencePath = req.ReferencePath
	report.ReferenceRows = tbl.Rows()

	uc.log.Info("synastry.run.done",
		"chart_a", a.Name,
		"chart_b", b.Name,
		"points_a", report.PointsA,
		"points_b", report.PointsB,
		"aspects", len(report.Results),
		"missing_variants", len(report.MissingAspects),
	)

	if !req.Save || uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	report.ID = id
	return report, id, nil
}

// BuildReport runs m over two charts. It is shared by the CLI run and the
// interactive session, which keeps one matcher for its whole lifetime.
func BuildReport(m *match.Matcher, a, b domain.Chart, now func() time.Time) domain.Report {
	if now == nil {
		now = time.Now
	}

	report := domain.Report{
		ChartA:         a.Name,
		ChartB:         b.Name,
		PointsA:        len(a.Points),
		PointsB:        len(b.Points),
		MissingAspects: m.Missing(),
		StartedAt:      now(),
	}
	report.Results = m.Run(a.Points, b.Points)
	report.FinishedAt = now()
	return report
}
