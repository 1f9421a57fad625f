package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// listFilesIn returns the immediate children of dir in enumeration order.
// Dot-prefixed names are only returned when hidden is set. With hidden set
// and skipSelfParent unset, the self and parent entries lead the list.
func listFilesIn(dir string, hidden bool, skipSelfParent bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	names, err := doublestar.Glob(os.DirFS(dir), "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(names)+2)
	if hidden && !skipSelfParent {
		// Join would clean these away, so they are built by hand.
		sep := string(filepath.Separator)
		paths = append(paths, dir+sep+".", dir+sep+"..")
	}
	for _, name := range names {
		if !hidden && strings.HasPrefix(name, ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// listDirectory runs the whole pipeline for dir and returns the joined
// listing.
func listDirectory(dir string, opts Options, filter *Filter, r *Renderer, log logrus.FieldLogger) (string, error) {
	paths, err := listFilesIn(dir, opts.hidden(), true)
	if err != nil {
		return "", err
	}

	kept := paths[:0]
	for _, path := range paths {
		if filter.ShouldInclude(path) {
			kept = append(kept, path)
		}
	}
	log.WithFields(logrus.Fields{"dir": dir, "listed": len(paths), "kept": len(kept)}).Debug("enumerated directory")

	return r.Assemble(buildEntries(kept, log), opts), nil
}
