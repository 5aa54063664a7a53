package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/errors"
	"github.com/firefly-engineering/actions-keep-alive/internal/heartbeat"
	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/sysinfo"
)

var (
	debugLogs  bool
	jsonOutput bool
	configPath string
)

// Report flags shared by every command that probes services.
var (
	flagInterval       int
	flagMessage        string
	flagServices       string
	flagVerbose        bool
	flagNoEmoji        bool
	flagNoTimestamp    bool
	flagNoHealth       bool
	flagNoBanner       bool
	flagColor          string
	flagCommandTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "keep-alive",
	Short: "Keep a CI job alive with periodic status output",
	Long: `keep-alive prints a status line on a fixed interval so hosted CI runners
do not time out a job that is waiting on a long-lived session.

Each tick can also report the state of the remote-access tools commonly
used to debug a runner:
  - tailscale (VPN daemon state)
  - docker (engine reachability and recent container logs)
  - ngrok (tunnel process)
  - ssh (client on PATH)

Settings are read from keepalive.toml in the working directory (or --config)
and overridden by flags. Stop with Ctrl-C or SIGTERM.`,
	Args:          usageArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debugLogs, jsonOutput, cmd.ErrOrStderr())
		// stdout carries only the report.
		logging.SetUserOutput(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	},
	RunE: runKeepAlive,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debugLogs, "debug", false, "Enable debug logging on stderr")
	pf.BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	pf.StringVar(&configPath, "config", "", "Path to a TOML config file (default: ./"+config.DefaultFileName+" if present)")

	pf.IntVarP(&flagInterval, "interval", "i", config.DefaultInterval, "Seconds between status lines")
	pf.StringVarP(&flagMessage, "message", "m", config.DefaultMessage, "Status line caption")
	pf.StringVarP(&flagServices, "services", "s", "", "Comma-separated services to check (default: all)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Show service details, errors and not-installed tools")
	pf.BoolVar(&flagNoEmoji, "no-emoji", false, "Use plain text markers instead of emoji")
	pf.BoolVar(&flagNoTimestamp, "no-timestamp", false, "Omit the timestamp from status lines")
	pf.BoolVar(&flagNoHealth, "no-health", false, "Disable service health checks")
	pf.StringVar(&flagColor, "color", config.ColorAuto, "Colour output: auto, always or never")
	pf.IntVar(&flagCommandTimeout, "command-timeout", 0, "Seconds before a probe command is abandoned (0: wait)")

	rootCmd.Flags().BoolVar(&flagNoBanner, "no-banner", false, "Skip the startup banner and system information")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.UsageError(err.Error())
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runKeepAlive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := heartbeat.NotifyContext(cmd.Context())
	defer stop()

	sched := heartbeat.New(cfg, registry(), cmd.OutOrStdout())

	if cfg.Banner {
		a := application()
		sched.PrintBanner(sysinfo.Collect(a.FS, a.WorkDir))
	}

	return sched.Run(ctx)
}
