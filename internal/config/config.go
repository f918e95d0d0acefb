package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrConflictingFlags is returned when --quiet and --quieter are both set.
	ErrConflictingFlags = errors.New("--quiet and --quieter cannot be used together")
	// ErrEmptyQuery is returned for an empty search query.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrEmptyRoot is returned for an empty root path.
	ErrEmptyRoot = errors.New("root path must not be empty")
)

// SearchConfig holds everything one search run needs. It is built once
// from command line input and not modified afterwards.
type SearchConfig struct {
	// Root is the directory the walk starts from
	Root string

	// Query is the literal phrase or regular expression
	Query string

	// Mode selects literal or regex matching
	Mode models.Mode

	// WholeLine prints matching lines instead of aggregated matches (regex mode only)
	WholeLine bool

	// SkipNames are directory base names whose subtrees are pruned
	SkipNames []string

	// Suffixes restricts searched files by name ending; empty means all files
	Suffixes []string

	// Verbosity selects which announcements are printed
	Verbosity models.Verbosity

	// Gitignore excludes files matched by <Root>/.gitignore
	Gitignore bool

	// Color is one of auto, always, never
	Color string

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string
}

// Flags carries raw command line values before validation.
type Flags struct {
	Regexp    bool
	WholeLine bool
	Skip      []string
	Suffix    []string
	Quiet     bool
	Quieter   bool
	Gitignore bool
	Color     string
	LogLevel  string
}

// DefaultConfig returns a SearchConfig with default values for everything
// except the root and query.
func DefaultConfig() *SearchConfig {
	return &SearchConfig{
		Mode:      models.ModeLiteral,
		Verbosity: models.VerbosityNormal,
		Color:     ColorAuto,
		LogLevel:  "warn",
	}
}

// New builds and validates a SearchConfig from positional arguments and flags.
func New(root, query string, flags Flags) (*SearchConfig, error) {
	cfg := DefaultConfig()
	cfg.Root = root
	cfg.Query = query
	if err := cfg.MergeWithFlags(flags); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeWithFlags applies flag values on top of the current configuration.
func (c *SearchConfig) MergeWithFlags(flags Flags) error {
	if flags.Quiet && flags.Quieter {
		return ErrConflictingFlags
	}

	if flags.Regexp {
		c.Mode = models.ModeRegex
	}
	c.WholeLine = flags.WholeLine
	c.SkipNames = append([]string(nil), flags.Skip...)
	c.Suffixes = append([]string(nil), flags.Suffix...)
	c.Gitignore = flags.Gitignore

	switch {
	case flags.Quieter:
		c.Verbosity = models.VerbosityQuieter
	case flags.Quiet:
		c.Verbosity = models.VerbosityQuiet
	}

	if flags.Color != "" {
		c.Color = strings.ToLower(strings.TrimSpace(flags.Color))
	}
	if flags.LogLevel != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(flags.LogLevel))
	}
	return nil
}

// Validate validates the configuration values.
// Pattern syntax is checked later, when the matcher compiles it.
func (c *SearchConfig) Validate() error {
	if c.Root == "" {
		return ErrEmptyRoot
	}
	if c.Query == "" {
		return ErrEmptyQuery
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", c.Color)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for _, name := range c.SkipNames {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("skip name %q must be a directory name, not a path", name)
		}
	}

	return nil
}

// WholeLineIgnored reports whether --whole-line was given without --regexp.
func (c *SearchConfig) WholeLineIgnored() bool {
	return c.WholeLine && c.Mode != models.ModeRegex
}
