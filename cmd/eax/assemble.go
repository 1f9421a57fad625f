package main

import (
	"slices"
	"strings"
)

const (
	sortByName     = "name"
	shortSeparator = "   "
)

// orderBy sorts items by key when sortKey is "name", reversing the whole
// order when reverse is set. Any other key keeps the enumeration order and
// ignores reverse.
func orderBy[T any](items []T, key func(T) string, sortKey string, reverse bool) []T {
	ordered := slices.Clone(items)
	if sortKey != sortByName {
		return ordered
	}
	slices.SortStableFunc(ordered, func(a, b T) int {
		return strings.Compare(key(a), key(b))
	})
	if reverse {
		slices.Reverse(ordered)
	}
	return ordered
}

func orderPaths(paths []string, sortKey string, reverse bool) []string {
	return orderBy(paths, func(p string) string { return p }, sortKey, reverse)
}

func orderEntries(entries []*Entry, sortKey string, reverse bool) []*Entry {
	return orderBy(entries, func(e *Entry) string { return e.Path }, sortKey, reverse)
}

func joinLines(lines []string, opts Options) string {
	if opts.oneEntryPerLine() {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines, shortSeparator)
}

// Assemble orders, renders and joins entries. Entries that fail to render
// are left out with a warning.
func (r *Renderer) Assemble(entries []*Entry, opts Options) string {
	ordered := orderEntries(entries, opts.Sort, opts.Reverse)
	lines := make([]string, 0, len(ordered))
	for _, e := range ordered {
		line, err := r.Render(e, opts)
		if err != nil {
			r.log.WithError(err).Warn("skipping entry")
			continue
		}
		lines = append(lines, line)
	}
	return joinLines(lines, opts)
}
