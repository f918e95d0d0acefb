package models

import (
	"fmt"
	"time"
)

// Mode selects how the query is matched against file lines.
type Mode int

const (
	// ModeLiteral matches the query as an exact, case-sensitive substring.
	ModeLiteral Mode = iota
	// ModeRegex compiles the query as a regular expression.
	ModeRegex
)

// String returns the flag-style name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeRegex:
		return "regexp"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Verbosity controls which announcements the reporter emits.
// Higher values print less.
type Verbosity int

const (
	VerbosityNormal Verbosity = iota
	VerbosityQuiet
	VerbosityQuieter
)

// String returns the human readable verbosity name.
func (v Verbosity) String() string {
	switch v {
	case VerbosityNormal:
		return "normal"
	case VerbosityQuiet:
		return "quiet"
	case VerbosityQuieter:
		return "quieter"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// DirectoryVisit is produced by the walker for every directory it reaches.
// Dirs and Files hold base names of the immediate children.
type DirectoryVisit struct {
	Path    string
	Dirs    []string
	Files   []string
	Skipped bool
}

// FileVisit describes one file taken from a DirectoryVisit.
type FileVisit struct {
	Path string
	Name string
	// Excluded is true when an exclusion predicate rejected the file.
	Excluded bool
	// Reason names the predicate that rejected the file ("suffix", "binary", "gitignore").
	Reason string
}

// RunStats counts what one search run visited.
type RunStats struct {
	DirsChecked  int
	DirsSkipped  int
	FilesChecked int
	FilesSkipped int
	FilesMatched int
	Occurrences  int
	Duration     time.Duration
}
