// Package search runs one traversal-filter-match-report pass.
package search

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harrison/findfiles/internal/config"
	"github.com/harrison/findfiles/internal/display"
	"github.com/harrison/findfiles/internal/fileutil"
	"github.com/harrison/findfiles/internal/filter"
	"github.com/harrison/findfiles/internal/logger"
	"github.com/harrison/findfiles/internal/matcher"
	"github.com/harrison/findfiles/internal/models"
)

// Logger receives diagnostics. *logger.ConsoleLogger satisfies it.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
	LogSummary(stats models.RunStats)
}

// Options supplies the collaborators of a Searcher. Zero values select the
// real file system, content sniffing, stdout and plain output.
type Options struct {
	FileSystem fileutil.FileSystem
	Detector   fileutil.BinaryDetector
	Output     io.Writer
	Style      *display.Style
	Logger     Logger
}

// Searcher walks a tree and reports matches for one configuration.
type Searcher struct {
	cfg        *config.SearchConfig
	fsys       fileutil.FileSystem
	walker     *fileutil.Walker
	exclusions filter.Chain
	matcher    matcher.Matcher
	reporter   *display.Reporter
	logger     Logger
}

// New prepares a run. Configuration problems, including an invalid regular
// expression, are returned here before anything is traversed.
func New(cfg *config.SearchConfig, opts Options) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = fileutil.OS()
	}
	detector := opts.Detector
	if detector == nil {
		detector = fileutil.NewMimeDetector(fsys)
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	var log Logger = logger.NewNoOpLogger()
	if opts.Logger != nil {
		log = opts.Logger
	}

	m, err := matcher.New(cfg.Mode, cfg.Query, cfg.WholeLine)
	if err != nil {
		return nil, err
	}
	log.LogDebug(fmt.Sprintf("Searching %s for %q in %s mode", cfg.Root, cfg.Query, cfg.Mode))
	if cfg.WholeLineIgnored() {
		log.LogWarn("--whole-line has no effect without --regexp")
	}

	exclusions := filter.Chain{filter.NewSuffixFilter(cfg.Suffixes)}
	if cfg.Gitignore {
		gi, err := filter.LoadGitignore(fsys, cfg.Root)
		if err != nil {
			return nil, err
		}
		if gi == nil {
			log.LogDebug(fmt.Sprintf("No .gitignore found in %s", cfg.Root))
		} else {
			exclusions = append(exclusions, gi)
		}
	}
	exclusions = append(exclusions, filter.NewBinaryFilter(detector))

	return &Searcher{
		cfg:        cfg,
		fsys:       fsys,
		walker:     fileutil.NewWalker(fsys, fileutil.NewSkipSet(cfg.SkipNames...)),
		exclusions: exclusions,
		matcher:    m,
		reporter:   display.NewReporter(out, opts.Style, cfg.Verbosity, cfg.Mode),
		logger:     log,
	}, nil
}

// Run performs the search. Output follows the walk order: a directory line,
// then its own files, then its subdirectories. Listing, reading and writing
// failures stop the run.
func (s *Searcher) Run() (models.RunStats, error) {
	start := time.Now()
	var stats models.RunStats

	for visit, err := range s.walker.Walk(s.cfg.Root) {
		if err != nil {
			return stats, err
		}

		s.reporter.Directory(visit)
		if visit.Skipped {
			stats.DirsSkipped++
			s.logger.LogDebug(fmt.Sprintf("Pruned %s", visit.Path))
			continue
		}
		stats.DirsChecked++

		for _, name := range visit.Files {
			if err := s.searchFile(fileutil.JoinPath(visit.Path, name), name, &stats); err != nil {
				return stats, err
			}
		}
		if err := s.reporter.Err(); err != nil {
			return stats, err
		}
	}

	stats.Duration = time.Since(start)
	s.logger.LogSummary(stats)
	return stats, s.reporter.Err()
}

func (s *Searcher) searchFile(path, name string, stats *models.RunStats) error {
	visit := models.FileVisit{Path: path, Name: name}

	excluded, reason, err := s.exclusions.Check(path, name)
	if err != nil {
		return err
	}
	visit.Excluded, visit.Reason = excluded, reason
	if visit.Excluded {
		stats.FilesSkipped++
		s.logger.LogDebug(fmt.Sprintf("Excluded %s (%s)", visit.Path, visit.Reason))
		s.reporter.FileSkipped(visit.Path)
		return nil
	}

	result, err := s.matchFile(visit.Path)
	if err != nil {
		return err
	}
	stats.FilesChecked++
	if result.HasMatches() {
		stats.FilesMatched++
		stats.Occurrences += result.Occurrences()
	}
	s.reporter.FileChecked(result)
	return nil
}

func (s *Searcher) matchFile(path string) (models.FileResult, error) {
	f, err := s.fsys.Open(path)
	if err != nil {
		return models.FileResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	result, err := s.matcher.Match(f)
	if err != nil {
		return models.FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	result.Path = path
	return result, nil
}
