package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func chartsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "charts",
		Short: "Inspect chart files in a workspace",
	}

	c.AddCommand(chartsListCmd())
	return c
}

func chartsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListCharts(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no charts found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Defaults:  A=%s B=%s\n\n", ws.cfg.Charts.DefaultA, ws.cfg.Charts.DefaultB)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s, %d points)\n", r.Name, rel, r.Points)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
