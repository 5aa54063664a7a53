//go:build linux

package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
)

func diskUsage(path string) *Capacity {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		logging.Debug("statfs failed", "path", path, "error", err)
		return nil
	}

	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	if total == 0 {
		return nil
	}
	return &Capacity{
		FreeGB:  bytesToGB(st.Bavail * bsize),
		TotalGB: bytesToGB(total),
	}
}

func hostStats() (*Capacity, time.Duration) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		logging.Debug("sysinfo failed", "error", err)
		return nil, 0
	}

	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	mem := &Capacity{
		FreeGB:  bytesToGB(uint64(si.Freeram) * unit),
		TotalGB: bytesToGB(uint64(si.Totalram) * unit),
	}
	return mem, time.Duration(si.Uptime) * time.Second
}
