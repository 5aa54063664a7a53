package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/actions-keep-alive/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show an interactive service dashboard",
	Long: `Opens a terminal dashboard that re-checks the configured services on
every interval. Press r to refresh immediately and q to quit.

With --once the current state is printed as plain text instead.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runWatch,
}

var watchOnce bool

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "Print one snapshot without the interactive view")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if watchOnce {
		snap := tui.Collect(cmd.Context(), registry(), cfg)
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSnapshot(snap))
		return nil
	}

	return tui.RunDashboard(registry(), cfg)
}
