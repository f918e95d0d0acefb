// Package filter decides which files a search run examines.
//
// Every rule is an Exclusion: a predicate with a short reason name. The
// suffix, gitignore and binary rules share that shape, so the caller runs
// them through one Chain and reports any rejection the same way.
package filter

import (
	"strings"

	"github.com/harrison/findfiles/internal/fileutil"
)

// Exclusion rejects files from a search.
type Exclusion interface {
	// Reason is a short name for log output, e.g. "suffix".
	Reason() string
	// Excludes reports whether the file at path (base name name) is rejected.
	Excludes(path, name string) (bool, error)
}

// Chain runs exclusions in order and stops at the first rejection.
type Chain []Exclusion

// Check returns the reason of the first exclusion that rejects the file, or
// an empty reason when the file should be searched.
func (c Chain) Check(path, name string) (excluded bool, reason string, err error) {
	for _, ex := range c {
		if ex == nil {
			continue
		}
		hit, err := ex.Excludes(path, name)
		if err != nil {
			return false, "", err
		}
		if hit {
			return true, ex.Reason(), nil
		}
	}
	return false, "", nil
}

// Include reports whether name ends with one of suffixes. An empty suffix
// list includes every file.
func Include(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// SuffixFilter excludes files whose names do not end with a configured suffix.
type SuffixFilter struct {
	suffixes []string
}

// NewSuffixFilter returns nil when suffixes is empty so a Chain skips it.
func NewSuffixFilter(suffixes []string) *SuffixFilter {
	if len(suffixes) == 0 {
		return nil
	}
	return &SuffixFilter{suffixes: append([]string(nil), suffixes...)}
}

func (f *SuffixFilter) Reason() string { return "suffix" }

func (f *SuffixFilter) Excludes(_, name string) (bool, error) {
	if f == nil {
		return false, nil
	}
	return !Include(name, f.suffixes), nil
}

// BinaryFilter excludes files whose content is not text.
type BinaryFilter struct {
	detector fileutil.BinaryDetector
}

// NewBinaryFilter wraps detector.
func NewBinaryFilter(detector fileutil.BinaryDetector) *BinaryFilter {
	return &BinaryFilter{detector: detector}
}

func (f *BinaryFilter) Reason() string { return "binary" }

func (f *BinaryFilter) Excludes(path, _ string) (bool, error) {
	return f.detector.IsBinary(path)
}
