package fileutil

import (
	"io/fs"
	"testing/fstest"
)

const testContent = "Tämä on testi.\n"

// scenarioTree mirrors the seven-directory layout used across the search tests.
func scenarioTree() fstest.MapFS {
	file := func() *fstest.MapFile { return &fstest.MapFile{Data: []byte(testContent)} }
	return fstest.MapFS{
		"file1.log":               file(),
		"file2.txt":               file(),
		"dir1/file3":              file(),
		"dir1/file4.py":           file(),
		"skipThis/file5.py":       file(),
		"skipThis/file6.log":      file(),
		"skipThis/dir3/file9.log": file(),
		"dir2/file7.log":          file(),
		"dir2/file8.py":           file(),
		"dir2/dir4":               &fstest.MapFile{Mode: fs.ModeDir | 0o755},
		"dir2/dir5/file10.log":    file(),
		"dir2/dir5/file11":        file(),
	}
}
