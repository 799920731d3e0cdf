//go:build linux

package util

import (
	"os"
	"syscall"
	"time"
)

// ChangeTime returns the inode change time, which is what the filesystem
// reports as the entry's ctime.
func ChangeTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec))
	}

	return info.ModTime()
}
