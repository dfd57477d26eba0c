package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/logger"
)

func aspectsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "aspects",
		Short: "Inspect the orb policy",
	}

	c.AddCommand(aspectsListCmd())
	return c
}

func aspectsListCmd() *cobra.Command {
	var workspace string
	var reference string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List aspect variants, their orbs and reference table coverage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var tbl *domain.ReferenceTable

			// Coverage is best effort: the policy is printed even outside a workspace.
			if ws, err := loadWorkspace(workspace); err == nil {
				t, lerr := ws.tables.LoadReferenceTable(resolveReferencePath(ws, reference))
				if lerr != nil {
					logger.L().Warn("aspects.list.reference_unavailable", "err", lerr)
				} else {
					tbl = t
				}
			}

			printPolicy(cmd.OutOrStdout(), domain.DefaultOrbPolicy(), tbl)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&reference, "reference", "r", "", "Reference table path (defaults to synastry.reference.path)")
	return cmd
}

func printPolicy(w io.Writer, policy domain.OrbPolicy, tbl *domain.ReferenceTable) {
	sixty := decimal.NewFromInt(domain.MinutesPerDegree)

	headers := []string{"Variant", "Aspect", "Orb (′)", "Orb (°)"}
	if tbl != nil {
		headers = append(headers, "In table")
	}

	var rows [][]string
	for _, v := range policy.Variants() {
		orb, _ := policy.Orb(v)
		row := []string{
			v,
			domain.Canonical(v),
			fmt.Sprintf("%d", orb),
			decimal.NewFromInt(int64(orb)).Div(sixty).StringFixed(2),
		}
		if tbl != nil {
			row = append(row, coverage(v, tbl))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(w, table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		Render())
}

func coverage(variant string, tbl *domain.ReferenceTable) string {
	if variant == domain.Conjunction {
		return "computed"
	}
	if tbl.HasVariant(variant) {
		return "yes"
	}
	return "no"
}
