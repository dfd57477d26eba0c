package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/logger"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/reportstore"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var chartA string
	var chartB string
	var reference string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Compute aspects between chart A and chart B",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			opts := []usecase.RunOption{usecase.WithLogger(logger.L())}
			if !noSave {
				opts = append(opts, usecase.WithReportStore(ws.store))
			}
			uc := usecase.NewRunSynastry(ws.charts, ws.tables, opts...)

			report, id, err := uc.Execute(cmd.Context(), usecase.RunRequest{
				ChartA:        chartArg(chartA, ws.cfg.Charts.DefaultA),
				ChartB:        chartArg(chartB, ws.cfg.Charts.DefaultB),
				ReferencePath: resolveReferencePath(ws, reference),
				Save:          !noSave,
			})
			if err != nil {
				return fmt.Errorf("run synastry: %w", err)
			}

			return printReport(cmd.OutOrStdout(), report, id, format, ws.cfg.Exports.BOM)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&chartA, "a", "", "Chart A name or path (defaults to synastry.charts.default_a)")
	c.Flags().StringVar(&chartB, "b", "", "Chart B name or path (defaults to synastry.charts.default_b)")
	c.Flags().StringVarP(&reference, "reference", "r", "", "Reference table path (defaults to synastry.reference.path)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not export the report under exports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|csv")

	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|csv)", format)
	}
}

func printReport(w io.Writer, report domain.Report, id string, format string, bom bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	case "csv":
		return reportstore.WriteCSV(w, report.Results, bom)
	case "pretty", "":
		printPrettyReport(w, report, id)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report, id string) {
	fmt.Fprintf(w, "Chart A:    %s (%d points)\n", report.ChartA, report.PointsA)
	fmt.Fprintf(w, "Chart B:    %s (%d points)\n", report.ChartB, report.PointsB)
	if report.ReferencePath != "" {
		fmt.Fprintf(w, "Reference:  %s (%d rows)\n", report.ReferencePath, report.ReferenceRows)
	}
	if !report.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:    %s\n", report.StartedAt.Format(time.RFC3339))
	}
	if id != "" {
		fmt.Fprintf(w, "Report ID:  %s\n", id)
	}
	fmt.Fprintln(w)

	if len(report.Results) == 0 {
		fmt.Fprintln(w, "(no aspects found)")
	} else {
		fmt.Fprintln(w, renderResults(report.Results))
		fmt.Fprintf(w, "%d aspect(s)\n", len(report.Results))
	}

	if n := len(report.MissingAspects); n > 0 {
		fmt.Fprintf(w, "note: %d aspect variant(s) not in the reference table (see `synastry validate`)\n", n)
	}
}

func renderResults(results []domain.SynastryResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.LabelA, r.LabelB, r.Aspect, r.OrbString()})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("A", "B", "Aspect", "Orb").
		Rows(rows...).
		Render()
}
