// Package sysinfo collects the host summary shown in the startup banner.
package sysinfo

import (
	"fmt"
	"net"
	"os"
	goruntime "runtime"
	"sort"
	"time"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// Capacity is a free/total pair in whole gigabytes.
type Capacity struct {
	FreeGB  uint64
	TotalGB uint64
}

// Info summarizes the host the job runs on.
type Info struct {
	Platform string
	Arch     string
	Hostname string
	Cwd      string
	CPUs     int

	// Memory, Disk and Uptime are nil or zero when the platform does not
	// expose them.
	Memory *Capacity
	Disk   *Capacity
	Uptime time.Duration

	IPs  []string
	Tree string
}

// Collect gathers host information for cwd. Failures degrade individual
// fields instead of failing the whole summary.
func Collect(fsys system.FileSystem, cwd string) *Info {
	hostname, err := os.Hostname()
	if err != nil {
		logging.Debug("hostname unavailable", "error", err)
		hostname = "unknown"
	}

	info := &Info{
		Platform: goruntime.GOOS,
		Arch:     goruntime.GOARCH,
		Hostname: hostname,
		Cwd:      cwd,
		CPUs:     goruntime.NumCPU(),
		Disk:     diskUsage(cwd),
		IPs:      ipAddresses(),
		Tree:     Tree(fsys, cwd, DefaultTreeDepth, DefaultTreeEntries),
	}
	info.Memory, info.Uptime = hostStats()

	return info
}

// ipAddresses returns the sorted, de-duplicated non-loopback addresses.
func ipAddresses() []string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logging.Debug("interface addresses unavailable", "error", err)
		return nil
	}

	seen := make(map[string]bool)
	var ips []string
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		ip := ipNet.IP.String()
		if !seen[ip] {
			seen[ip] = true
			ips = append(ips, ip)
		}
	}
	sort.Strings(ips)
	return ips
}

// FormatUptime renders an uptime as "Xh Ym".
func FormatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func bytesToGB(bytes uint64) uint64 {
	return bytes / 1024 / 1024 / 1024
}
