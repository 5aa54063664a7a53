package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/actions-keep-alive/internal/errors"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

const (
	// DefaultInterval is the tick period in seconds.
	DefaultInterval = 300

	// DefaultMessage is the header caption used when no custom message is set.
	DefaultMessage = "Remote access still running..."

	// DefaultFileName is looked up in the working directory when no
	// configuration file is given explicitly.
	DefaultFileName = "keepalive.toml"
)

// Color modes for report styling.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the run configuration handed to the heartbeat scheduler.
// It is built once at startup and not modified afterwards.
type Config struct {
	// Interval is the tick period in seconds. It doubles as the lookback
	// window for recent container logs.
	Interval int `toml:"interval"`

	// Services lists the services to probe, in order. Empty means all
	// known services.
	Services []string `toml:"services"`

	// Message replaces the default header caption when set.
	Message string `toml:"message"`

	HealthChecks bool `toml:"health_checks"`
	Verbose      bool `toml:"verbose"`

	// Banner controls the startup banner with configuration and system information.
	Banner bool `toml:"banner"`

	// CommandTimeout bounds each probe in seconds. Zero waits for commands to finish.
	CommandTimeout int `toml:"command_timeout"`

	Display Display `toml:"display"`
}

// Display holds the cosmetic output options.
type Display struct {
	Timestamp bool   `toml:"timestamp"`
	Emoji     bool   `toml:"emoji"`
	Color     string `toml:"color"`
}

// Default returns the configuration used when neither a file nor flags
// override anything.
func Default() *Config {
	return &Config{
		Interval:     DefaultInterval,
		HealthChecks: true,
		Banner:       true,
		Display: Display{
			Timestamp: true,
			Emoji:     true,
			Color:     ColorAuto,
		},
	}
}

// Validate checks that the Config is usable by the scheduler.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return errors.InvalidConfig("interval", fmt.Sprintf("must be a positive number of seconds, got %d", c.Interval))
	}

	if c.CommandTimeout < 0 {
		return errors.InvalidConfig("command timeout", fmt.Sprintf("must not be negative, got %d", c.CommandTimeout))
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.InvalidConfig("color", fmt.Sprintf("%q (must be auto, always, or never)", c.Display.Color))
	}

	return nil
}

// IntervalDuration returns the tick period.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// CommandTimeoutDuration returns the per-probe timeout, zero when unbounded.
func (c *Config) CommandTimeoutDuration() time.Duration {
	return time.Duration(c.CommandTimeout) * time.Second
}

// Caption returns the header caption for each tick.
func (c *Config) Caption() string {
	if c.Message != "" {
		return c.Message
	}
	return DefaultMessage
}

// ParseServices splits a comma-separated service list, trimming whitespace
// and dropping empty entries. Unknown names are kept; they are reported at
// tick time rather than rejected here.
func ParseServices(list string) []string {
	var services []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return services
}

// Discover returns the path of the default configuration file in dir, or
// an empty string when there is none.
func Discover(fsys system.FileSystem, dir string) string {
	path := filepath.Join(dir, DefaultFileName)
	if fsys.Exists(path) {
		return path
	}
	return ""
}

// Load reads a TOML configuration file on top of the defaults. Keys absent
// from the file keep their default values; unknown keys are rejected.
func Load(fsys system.FileSystem, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read %s", path), err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.ConfigError(fmt.Sprintf("unknown keys in %s: %s", path, strings.Join(keys, ", ")), nil)
	}

	cleaned := cfg.Services[:0]
	for _, s := range cfg.Services {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	cfg.Services = cleaned

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
