package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Entry is one listed path with its classification.
type Entry struct {
	Path string
	Kind Kind
}

// NewEntry stats path and classifies it.
func NewEntry(path string) (*Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newEntryError("classify", path, err)
	}
	return &Entry{Path: path, Kind: classify(path, info)}, nil
}

// Name returns the base name shown in the listing. The self and parent
// entries keep their literal names.
func (e *Entry) Name() string {
	for _, special := range []string{".", ".."} {
		if strings.HasSuffix(e.Path, string(filepath.Separator)+special) {
			return special
		}
	}
	return filepath.Base(e.Path)
}

// buildEntries classifies every path, skipping those whose metadata
// cannot be read.
func buildEntries(paths []string, log logrus.FieldLogger) []*Entry {
	entries := make([]*Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := NewEntry(path)
		if err != nil {
			log.WithError(err).Warn("skipping entry")
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
