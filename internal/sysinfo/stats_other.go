//go:build !linux

package sysinfo

import "time"

func diskUsage(path string) *Capacity {
	return nil
}

func hostStats() (*Capacity, time.Duration) {
	return nil, 0
}
