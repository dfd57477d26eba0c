package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var chartA string
	var chartB string
	var reference string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Load charts and the reference table without computing aspects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateCharts(ws.charts, ws.tables)
			v, err := uc.Execute(cmd.Context(), usecase.RunRequest{
				ChartA:        chartArg(chartA, ws.cfg.Charts.DefaultA),
				ChartB:        chartArg(chartB, ws.cfg.Charts.DefaultB),
				ReferencePath: resolveReferencePath(ws, reference),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Chart A:   %s (%d points)\n", v.ChartA.Name, len(v.ChartA.Points))
			fmt.Fprintf(out, "Chart B:   %s (%d points)\n", v.ChartB.Name, len(v.ChartB.Points))
			fmt.Fprintf(out, "Reference: %d rows, %d aspect variant(s) usable\n", v.ReferenceRows, len(v.Variants))
			if len(v.MissingAspects) > 0 {
				fmt.Fprintf(out, "Missing:   %s\n", strings.Join(v.MissingAspects, ", "))
			}
			if len(v.Unplaced) > 0 {
				fmt.Fprintf(out, "No table row for A points: %s\n", strings.Join(v.Unplaced, ", "))
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&chartA, "a", "", "Chart A name or path (defaults to synastry.charts.default_a)")
	c.Flags().StringVar(&chartB, "b", "", "Chart B name or path (defaults to synastry.charts.default_b)")
	c.Flags().StringVarP(&reference, "reference", "r", "", "Reference table path (defaults to synastry.reference.path)")

	return c
}
