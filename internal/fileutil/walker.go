package fileutil

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// SkipSet holds directory base names whose subtrees are pruned.
type SkipSet map[string]struct{}

// NewSkipSet builds a SkipSet from names. Empty names are ignored.
func NewSkipSet(names ...string) SkipSet {
	set := make(SkipSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set. Only exact base names match.
func (s SkipSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// ListError reports a directory that could not be enumerated.
type ListError struct {
	Path string
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Walker produces DirectoryVisit values in pre-order.
type Walker struct {
	fsys FileSystem
	skip SkipSet
}

// NewWalker creates a Walker over fsys pruning directories named in skip.
func NewWalker(fsys FileSystem, skip SkipSet) *Walker {
	if skip == nil {
		skip = SkipSet{}
	}
	return &Walker{fsys: fsys, skip: skip}
}

// Walk yields one visit per directory reachable from root. A visit is
// yielded before any of its descendants, and children are visited in the
// order the FileSystem lists them. Skipped directories are yielded once and
// never descended into. On a listing error the error is yielded and the walk
// stops.
func (w *Walker) Walk(root string) iter.Seq2[models.DirectoryVisit, error] {
	return func(yield func(models.DirectoryVisit, error) bool) {
		w.visit(root, yield)
	}
}

func (w *Walker) visit(dir string, yield func(models.DirectoryVisit, error) bool) bool {
	skipped := w.skip.Contains(baseName(dir))

	dirs, files, err := w.fsys.List(dir)
	if err != nil {
		if !skipped {
			yield(models.DirectoryVisit{Path: dir}, &ListError{Path: dir, Err: err})
			return false
		}
		dirs, files = nil, nil
	}

	visit := models.DirectoryVisit{
		Path:    dir,
		Dirs:    dirs,
		Files:   files,
		Skipped: skipped,
	}
	if !yield(visit, nil) {
		return false
	}
	if skipped {
		return true
	}

	for _, name := range dirs {
		if !w.visit(JoinPath(dir, name), yield) {
			return false
		}
	}
	return true
}

// baseName returns the last element of dir, ignoring trailing separators.
func baseName(dir string) string {
	trimmed := strings.TrimRight(dir, `/`+string(filepath.Separator))
	if trimmed == "" {
		return dir
	}
	return filepath.Base(trimmed)
}
