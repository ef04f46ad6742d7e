//go:build linux

package faros

import "golang.org/x/sys/unix"

// totalMemoryGB reports installed RAM, or 0 when sysinfo fails.
func totalMemoryGB() float64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		logger().Debug("sysinfo unavailable", "err", err)
		return 0
	}
	total := float64(info.Totalram) * float64(info.Unit)
	return total / (1 << 30)
}
