//go:build !linux && !darwin

package main

import (
	"io/fs"
	"time"
)

// isExecutable falls back to the mode bits where access(2) with
// AT_EACCESS is not wired up.
func isExecutable(_ string, mode fs.FileMode) bool {
	return mode&0o111 != 0
}

func ownerIDs(fs.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}

func changeTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
