package heartbeat

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/sysinfo"
)

// PrintBanner prints the startup banner, the effective configuration and,
// when info is non-nil, the host summary.
func (s *Scheduler) PrintBanner(info *sysinfo.Info) {
	s.println(s.styles.banner.Render(join(s.glyphs.rocket, "Actions Keep Alive Started")))
	s.println("")

	s.println(s.styles.section.Render("Configuration:"))
	s.println(fmt.Sprintf("  Interval: %d seconds (%d minutes)", s.cfg.Interval, s.cfg.Interval/60))
	if len(s.cfg.Services) > 0 {
		s.println("  Monitoring: " + strings.Join(s.cfg.Services, ", "))
	}
	s.println("  Health Checks: " + enabled(s.cfg.HealthChecks))
	s.println("  Verbose: " + yesNo(s.cfg.Verbose))
	s.println("")

	if info == nil {
		return
	}

	s.println(s.styles.info.Render("System Information:"))
	s.println(fmt.Sprintf("  Platform: %s (%s)", info.Platform, info.Arch))
	s.println("  Hostname: " + info.Hostname)
	s.println("  CWD: " + info.Cwd)
	s.println(fmt.Sprintf("  CPUs: %d", info.CPUs))
	s.println("  Memory: " + capacity(info.Memory))
	s.println("  Disk: " + capacity(info.Disk))
	if len(info.IPs) > 0 {
		s.println("  IPs: " + strings.Join(info.IPs, ", "))
	} else {
		s.println("  IPs: none")
	}
	if info.Uptime > 0 {
		s.println("  Uptime: " + sysinfo.FormatUptime(info.Uptime))
	} else {
		s.println("  Uptime: unavailable")
	}
	s.println("")

	if info.Tree != "" {
		s.println("  CWD Tree:")
		for _, line := range strings.Split(info.Tree, "\n") {
			s.println("    " + line)
		}
		s.println("")
	}
}

func capacity(c *sysinfo.Capacity) string {
	if c == nil {
		return "unavailable"
	}
	return fmt.Sprintf("%dGB free / %dGB total", c.FreeGB, c.TotalGB)
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
