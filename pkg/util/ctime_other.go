//go:build !linux && !darwin

package util

import (
	"os"
	"time"
)

// ChangeTime falls back to the modification time on platforms without a
// ctime in their stat structure.
func ChangeTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
