package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/actions-keep-alive/internal/heartbeat"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print a single status report and exit",
	Long: `Runs one report cycle with the current configuration and exits.
Useful to verify which remote-access tools a runner has before starting
the keep-alive loop.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sched := heartbeat.New(cfg, registry(), cmd.OutOrStdout())
	sched.Tick(cmd.Context())
	return nil
}
