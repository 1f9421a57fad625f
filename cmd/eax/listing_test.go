package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilesIn(t *testing.T) {
	tmp := t.TempDir()
	writeTestFile(t, filepath.Join(tmp, "b.txt"), "", 0o644)
	writeTestFile(t, filepath.Join(tmp, "a.txt"), "", 0o644)
	writeTestFile(t, filepath.Join(tmp, ".hidden"), "", 0o644)
	mkdirTest(t, filepath.Join(tmp, "sub"))
	writeTestFile(t, filepath.Join(tmp, "sub", "nested.txt"), "", 0o644)

	paths, err := listFilesIn(tmp, false, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, joinTest(tmp, "a.txt", "b.txt", "sub"), paths)

	paths, err = listFilesIn(tmp, true, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, joinTest(tmp, ".hidden", "a.txt", "b.txt", "sub"), paths)
}

func TestListFilesInErrors(t *testing.T) {
	tmp := t.TempDir()
	_, err := listFilesIn(filepath.Join(tmp, "missing"), false, true)
	assert.Error(t, err)

	file := filepath.Join(tmp, "file")
	writeTestFile(t, file, "", 0o644)
	_, err = listFilesIn(file, false, true)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestListDirectoryShortUnsorted(t *testing.T) {
	tmp := t.TempDir()
	mkdirTest(t, filepath.Join(tmp, "sub"))
	writeTestFile(t, filepath.Join(tmp, "run.sh"), "#!/bin/sh\n", 0o755)
	writeTestFile(t, filepath.Join(tmp, "README.md"), "# eax\n", 0o644)

	paths, err := listFilesIn(tmp, false, true)
	require.NoError(t, err)
	kinds := map[string]Kind{}
	for _, e := range buildEntries(paths, discardLogger()) {
		kinds[e.Name()] = e.Kind
	}
	assert.Equal(t, map[string]Kind{"sub": Folder, "run.sh": Executable, "README.md": Important}, kinds)

	s := newRecordingStyler()
	out, err := listDirectory(tmp, Options{}, nil, NewRenderer(s, discardLogger()), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, map[Role]int{RoleFolder: 1, RoleExecutable: 1, RoleImportant: 1}, s.calls)
	assert.Len(t, out, len("README.md")+len("run.sh")+len("sub")+2*len(shortSeparator))
	for _, name := range []string{"README.md", "run.sh", "sub"} {
		assert.Contains(t, out, name)
	}
}

func TestListDirectorySortedWithFilter(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.tmp", ".env"} {
		writeTestFile(t, filepath.Join(tmp, name), "", 0o644)
	}

	filter, err := NewFilter(tmp, false, []string{"*.tmp"})
	require.NoError(t, err)
	r := NewRenderer(plainStyler{}, discardLogger())

	out, err := listDirectory(tmp, Options{Sort: "name"}, filter, r, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "a.txt   b.txt", out)

	out, err = listDirectory(tmp, Options{Sort: "name", Reverse: true, All: true, Oneline: true}, filter, r, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "b.txt\na.txt\n.env", out)
}

func TestListDirectoryLongIncludesDotfiles(t *testing.T) {
	tmp := t.TempDir()
	writeTestFile(t, filepath.Join(tmp, ".env"), "x", 0o644)
	writeTestFile(t, filepath.Join(tmp, "app.go"), "x", 0o644)

	r := NewRenderer(plainStyler{}, discardLogger())
	out, err := listDirectory(tmp, Options{Long: true, Sort: "name"}, nil, r, discardLogger())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], ".env")
	assert.Contains(t, lines[1], "app.go")
}

func TestListDirectorySkipsBrokenSymlink(t *testing.T) {
	tmp := t.TempDir()
	writeTestFile(t, filepath.Join(tmp, "real.txt"), "", 0o644)
	require.NoError(t, os.Symlink(filepath.Join(tmp, "nowhere"), filepath.Join(tmp, "dangling")))

	r := NewRenderer(plainStyler{}, discardLogger())
	out, err := listDirectory(tmp, Options{Sort: "name"}, nil, r, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "real.txt", out)
}

func TestListFilesInSelfAndParent(t *testing.T) {
	tmp := t.TempDir()
	writeTestFile(t, filepath.Join(tmp, "a"), "", 0o644)

	paths, err := listFilesIn(tmp, true, false)
	require.NoError(t, err)
	sep := string(filepath.Separator)
	assert.Equal(t, []string{tmp + sep + ".", tmp + sep + "..", filepath.Join(tmp, "a")}, paths)

	entries := buildEntries(paths, discardLogger())
	require.Len(t, entries, 3)
	assert.Equal(t, ".", entries[0].Name())
	assert.Equal(t, "..", entries[1].Name())
	assert.Equal(t, Folder, entries[0].Kind)
	assert.Equal(t, Folder, entries[1].Kind)

	paths, err = listFilesIn(tmp, false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmp, "a")}, paths, "self and parent are dotfiles")

	paths, err = listFilesIn(tmp, true, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmp, "a")}, paths)
}
