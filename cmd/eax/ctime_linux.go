package main

import (
	"io/fs"
	"syscall"
	"time"
)

// changeTime returns the inode change time, or the modification time when
// the platform stat is unavailable.
func changeTime(info fs.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec))
	}
	return info.ModTime()
}
