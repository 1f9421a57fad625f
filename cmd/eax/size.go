package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	sizeWidth       = 6
	sizePlaceholder = "     -"
)

// formatSize renders a byte count for the long listing. Directories get a
// placeholder; raw prints the plain count.
func formatSize(size int64, isDir bool, raw bool) string {
	if isDir {
		return sizePlaceholder
	}
	if raw {
		return strconv.FormatInt(size, 10)
	}
	if size < 0 {
		size = 0
	}

	// IBytes yields "4.0 KiB" or "512 B"; keep only "4K" or "512".
	pretty := humanize.IBytes(uint64(size))
	pretty = strings.Replace(pretty, ".0 ", " ", 1)
	pretty = strings.ReplaceAll(pretty, " ", "")
	pretty = strings.TrimSuffix(pretty, "B")
	pretty = strings.TrimSuffix(pretty, "i")
	return fmt.Sprintf("%*s", sizeWidth, pretty)
}
