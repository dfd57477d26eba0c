package ports

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

// ReportStore exports a finished synastry report.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
