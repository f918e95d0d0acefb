package fileutil

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileSystem lists directories and opens files by path.
type FileSystem interface {
	// List returns the base names of the immediate subdirectories and files
	// of dir, each sorted by name.
	List(dir string) (dirs []string, files []string, err error)
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)
}

type osFileSystem struct{}

// OS returns a FileSystem backed by the operating system.
func OS() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) List(dir string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var dirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			dirs = append(dirs, name)
		case entry.Type()&fs.ModeSymlink != 0:
			// Links to directories are not followed; broken links are dropped.
			info, err := os.Stat(JoinPath(dir, name))
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, name)
		case entry.Type().IsRegular():
			files = append(files, name)
		}
	}
	return dirs, files, nil
}

func (osFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type ioFileSystem struct {
	fsys fs.FS
}

// FromFS adapts an fs.FS. Paths handed to the returned FileSystem may use
// OS separators and a leading "./"; they are cleaned before use.
func FromFS(fsys fs.FS) FileSystem {
	return ioFileSystem{fsys: fsys}
}

func (f ioFileSystem) List(dir string) ([]string, []string, error) {
	entries, err := fs.ReadDir(f.fsys, fsPath(dir))
	if err != nil {
		return nil, nil, err
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
			continue
		}
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	return dirs, files, nil
}

func (f ioFileSystem) Open(name string) (io.ReadCloser, error) {
	return f.fsys.Open(fsPath(name))
}

func fsPath(name string) string {
	p := path.Clean(filepath.ToSlash(name))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// JoinPath appends name to dir without cleaning dir, so "." stays "./".
func JoinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
