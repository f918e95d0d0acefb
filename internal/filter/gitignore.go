package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/harrison/findfiles/internal/fileutil"
)

// GitignoreFilter excludes files matched by the .gitignore at the search root.
type GitignoreFilter struct {
	root string
	gi   *ignore.GitIgnore
}

// LoadGitignore reads <root>/.gitignore through fsys. A missing file yields
// a nil filter and no error.
func LoadGitignore(fsys fileutil.FileSystem, root string) (*GitignoreFilter, error) {
	path := fileutil.JoinPath(root, ".gitignore")
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &GitignoreFilter{root: root, gi: ignore.CompileIgnoreLines(lines...)}, nil
}

func (f *GitignoreFilter) Reason() string { return "gitignore" }

func (f *GitignoreFilter) Excludes(path, _ string) (bool, error) {
	if f == nil || f.gi == nil {
		return false, nil
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s against %s: %w", path, f.root, err)
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return false, nil
	}
	return f.gi.MatchesPath(rel), nil
}
