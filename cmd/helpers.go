package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/actions-keep-alive/internal/app"
	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/errors"
	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
)

// application returns the application context.
// This is a helper to reduce repetition in commands.
func application() *app.App {
	return app.Default
}

// registry returns the probes bound to the application's executor.
func registry() *probe.Registry {
	return application().Registry()
}

// usageArgs maps positional-argument errors to the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.UsageError(err.Error())
		}
		return nil
	}
}

// warnUnknownServices flags configured names with no probe. They are not an
// error: the loop keeps reporting them as unknown.
func warnUnknownServices(services []string) {
	reg := registry()
	for _, name := range services {
		if _, ok := reg.Lookup(name); !ok {
			logging.UserWarning("Unknown service %q will be reported on every tick", name)
		}
	}
}

// loadConfig builds the effective configuration: defaults, then the config
// file, then any flag given explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	a := application()

	path := configPath
	if path == "" {
		path = config.Discover(a.FS, a.WorkDir)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(a.FS, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logging.UserInfo("Loaded configuration from %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = flagInterval
	}
	if flags.Changed("message") {
		cfg.Message = flagMessage
	}
	if flags.Changed("services") {
		cfg.Services = config.ParseServices(flagServices)
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if flags.Changed("no-emoji") {
		cfg.Display.Emoji = !flagNoEmoji
	}
	if flags.Changed("no-timestamp") {
		cfg.Display.Timestamp = !flagNoTimestamp
	}
	if flags.Changed("no-health") {
		cfg.HealthChecks = !flagNoHealth
	}
	if flags.Changed("color") {
		cfg.Display.Color = flagColor
	}
	if flags.Changed("command-timeout") {
		cfg.CommandTimeout = flagCommandTimeout
	}
	if flags.Changed("no-banner") {
		cfg.Banner = !flagNoBanner
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	warnUnknownServices(cfg.Services)

	logging.Debug("effective config",
		"interval", cfg.Interval,
		"services", cfg.Services,
		"health_checks", cfg.HealthChecks,
		"verbose", cfg.Verbose,
		"color", cfg.Display.Color,
	)
	return cfg, nil
}
