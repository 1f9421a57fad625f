package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Filter hides entries matched by ignore patterns or by the listed
// directory's .gitignore.
type Filter struct {
	gitIgnore      *ignore.GitIgnore
	baseDir        string
	ignorePatterns []string
}

// NewFilter creates a filter for dir. When useGitIgnore is set and dir has
// a .gitignore, its rules apply too.
func NewFilter(dir string, useGitIgnore bool, ignorePatterns []string) (*Filter, error) {
	for _, pattern := range ignorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	f := &Filter{
		baseDir:        dir,
		ignorePatterns: ignorePatterns,
	}

	if useGitIgnore {
		gitIgnorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			gitIgnore, err := ignore.CompileIgnoreFile(gitIgnorePath)
			if err != nil {
				return nil, err
			}
			f.gitIgnore = gitIgnore
		}
	}

	return f, nil
}

// ShouldInclude returns true if path should be listed
func (f *Filter) ShouldInclude(path string) bool {
	if f == nil {
		return true
	}

	base := filepath.Base(path)
	for _, pattern := range f.ignorePatterns {
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return false
		}
	}

	if f.gitIgnore == nil {
		return true
	}

	relPath, err := filepath.Rel(f.baseDir, path)
	if err != nil {
		return true
	}
	return !f.gitIgnore.MatchesPath(filepath.ToSlash(relPath))
}
