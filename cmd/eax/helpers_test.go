package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// recordingStyler returns text unchanged and counts calls per role.
type recordingStyler struct {
	calls map[Role]int
}

func newRecordingStyler() *recordingStyler {
	return &recordingStyler{calls: map[Role]int{}}
}

func (s *recordingStyler) Style(role Role, text string) string {
	s.calls[role]++
	return text
}

func discardLogger() *logrus.Logger {
	return newLogger(io.Discard, false)
}

func writeTestFile(t *testing.T, path string, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
}

func mkdirTest(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.Mkdir(path, 0o755))
}

func statTest(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info
}

func joinTest(dir string, names ...string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}
