package main

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var importantNames = map[string]bool{
	"README.md": true,
	"Gemfile":   true,
	"Grunt.js":  true,
}

// Extensions are compared without the leading dot and case-sensitively.
var imageExtensions = map[string]bool{
	"jpeg":   true,
	"jpg":    true,
	"gif":    true,
	"svg":    true,
	"bitmap": true,
}

// classify maps a path and its metadata to a Kind. Rules are checked in
// order and the first match wins.
func classify(path string, info fs.FileInfo) Kind {
	if info.IsDir() {
		return Folder
	}
	if isExecutable(path, info.Mode()) {
		return Executable
	}

	base := filepath.Base(path)
	if importantNames[base] {
		return Important
	}
	// A leading dot starts a hidden name, not an extension.
	ext := filepath.Ext(strings.TrimPrefix(base, "."))
	if imageExtensions[strings.TrimPrefix(ext, ".")] {
		return Image
	}
	return Normal
}
