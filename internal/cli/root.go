package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/fsworkspace"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/logger"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/workspacefinder"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "synastry",
		Short:        "Synastry aspect mapper: aspects between two charts",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var start string
			if f := c.Flags().Lookup("workspace"); f != nil {
				start = f.Value.String()
			}
			cleanup = setupLogging(start, debug)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level with source locations (synastry.logs sets the file)")

	cmd.AddCommand(
		runCmd(),
		validateCmd(),
		chartsCmd(),
		aspectsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging logs under the workspace when one is known, else under the
// working directory, placed and levelled by the workspace's logs block.
// Failures leave the discard logger in place.
func setupLogging(workspaceFlag string, debug bool) func() error {
	logRoot := strings.TrimSpace(workspaceFlag)
	if logRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		logRoot, _ = filepath.Abs(wd)

		if root, ferr := workspacefinder.NewFinder().FindRoot(logRoot); ferr == nil && root != "" {
			logRoot = root
		}
	}

	// A missing or broken synastry.yaml still yields defaults.
	cfg, _ := workspacefinder.LoadConfig(logRoot)

	cleanup, err := logger.Setup(logger.FromWorkspace(logRoot, cfg, debug))
	if err != nil {
		return nil
	}
	return cleanup
}
