package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/findfiles/internal/models"
)

func collect(t *testing.T, w *Walker, root string) []models.DirectoryVisit {
	t.Helper()
	var visits []models.DirectoryVisit
	for visit, err := range w.Walk(root) {
		require.NoError(t, err)
		visits = append(visits, visit)
	}
	return visits
}

func paths(visits []models.DirectoryVisit) []string {
	out := make([]string, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.Path)
	}
	return out
}

func TestWalk_PreOrder(t *testing.T) {
	w := NewWalker(FromFS(scenarioTree()), nil)
	visits := collect(t, w, ".")

	assert.Equal(t, []string{
		".",
		"./dir1",
		"./dir2",
		"./dir2/dir4",
		"./dir2/dir5",
		"./skipThis",
		"./skipThis/dir3",
	}, paths(visits))

	root := visits[0]
	assert.False(t, root.Skipped)
	assert.Equal(t, []string{"dir1", "dir2", "skipThis"}, root.Dirs)
	assert.Equal(t, []string{"file1.log", "file2.txt"}, root.Files)

	assert.Empty(t, visits[3].Files, "dir4 is empty")
	assert.Empty(t, visits[3].Dirs)
}

func TestWalk_PrunesWholeSubtree(t *testing.T) {
	tests := []struct {
		name      string
		skip      []string
		wantPaths []string
		wantSkip  []string
	}{
		{
			name:      "single skip",
			skip:      []string{"skipThis"},
			wantPaths: []string{".", "./dir1", "./dir2", "./dir2/dir4", "./dir2/dir5", "./skipThis"},
			wantSkip:  []string{"./skipThis"},
		},
		{
			name:      "multiple skips",
			skip:      []string{"dir1", "skipThis", "dir5"},
			wantPaths: []string{".", "./dir1", "./dir2", "./dir2/dir4", "./dir2/dir5", "./skipThis"},
			wantSkip:  []string{"./dir1", "./dir2/dir5", "./skipThis"},
		},
		{
			name:      "nested name under pruned parent is never reached",
			skip:      []string{"skipThis", "dir3"},
			wantPaths: []string{".", "./dir1", "./dir2", "./dir2/dir4", "./dir2/dir5", "./skipThis"},
			wantSkip:  []string{"./skipThis"},
		},
		{
			name:      "skip by nested name only",
			skip:      []string{"dir3"},
			wantPaths: []string{".", "./dir1", "./dir2", "./dir2/dir4", "./dir2/dir5", "./skipThis", "./skipThis/dir3"},
			wantSkip:  []string{"./skipThis/dir3"},
		},
		{
			name:      "relative path does not match",
			skip:      []string{"dir2/dir5"},
			wantPaths: []string{".", "./dir1", "./dir2", "./dir2/dir4", "./dir2/dir5", "./skipThis", "./skipThis/dir3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalker(FromFS(scenarioTree()), NewSkipSet(tt.skip...))
			visits := collect(t, w, ".")

			assert.Equal(t, tt.wantPaths, paths(visits))

			var skipped []string
			for _, v := range visits {
				if v.Skipped {
					skipped = append(skipped, v.Path)
				}
			}
			assert.ElementsMatch(t, tt.wantSkip, skipped)
		})
	}
}

func TestWalk_SkippedRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vendor")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inner"), 0o755))

	w := NewWalker(OS(), NewSkipSet("vendor"))
	visits := collect(t, w, dir)

	require.Len(t, visits, 1)
	assert.True(t, visits[0].Skipped)
	assert.Equal(t, dir, visits[0].Path)
}

func TestWalk_StopsWhenConsumerBreaks(t *testing.T) {
	w := NewWalker(FromFS(scenarioTree()), nil)
	count := 0
	for _, err := range w.Walk(".") {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

type failingFS struct {
	FileSystem
	failOn string
}

func (f failingFS) List(dir string) ([]string, []string, error) {
	if dir == f.failOn {
		return nil, nil, fs.ErrPermission
	}
	return f.FileSystem.List(dir)
}

func TestWalk_ListErrorIsSurfaced(t *testing.T) {
	w := NewWalker(failingFS{FileSystem: FromFS(scenarioTree()), failOn: "./dir2"}, nil)

	var got []string
	var walkErr error
	for visit, err := range w.Walk(".") {
		if err != nil {
			walkErr = err
			break
		}
		got = append(got, visit.Path)
	}

	require.Error(t, walkErr)
	var listErr *ListError
	require.True(t, errors.As(walkErr, &listErr))
	assert.Equal(t, "./dir2", listErr.Path)
	assert.ErrorIs(t, walkErr, fs.ErrPermission)
	assert.Equal(t, []string{".", "./dir1"}, got)
}

func TestWalk_ListErrorInsideSkippedDirIsIgnored(t *testing.T) {
	w := NewWalker(failingFS{FileSystem: FromFS(scenarioTree()), failOn: "./skipThis"}, NewSkipSet("skipThis"))
	visits := collect(t, w, ".")

	last := visits[len(visits)-1]
	assert.Equal(t, "./skipThis", last.Path)
	assert.True(t, last.Skipped)
	assert.Nil(t, last.Files)
}

func TestOSFileSystem_List(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "z.txt"), []byte("z"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "y.log"), []byte("y"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a"), filepath.Join(dir, "link-to-dir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "z.txt"), filepath.Join(dir, "link-to-file")))

	dirs, files, err := OS().List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dirs)
	assert.Equal(t, []string{"link-to-file", "y.log", "z.txt"}, files)
}

func TestOSFileSystem_ListMissing(t *testing.T) {
	_, _, err := OS().List(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestJoinPath(t *testing.T) {
	sep := string(filepath.Separator)
	assert.Equal(t, "."+sep+"dir1", JoinPath(".", "dir1"))
	assert.Equal(t, "root"+sep+"file", JoinPath("root"+sep, "file"))
	assert.Equal(t, "./dir1", JoinPath("./", "dir1"))
}

func TestSkipSet(t *testing.T) {
	s := NewSkipSet("a", "", "b")
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains(""))
	assert.False(t, s.Contains("ab"))
	assert.Len(t, s, 2)
}
