package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
