package display

import (
	"fmt"
	"io"

	"github.com/harrison/findfiles/internal/models"
)

const (
	checkingFolder = "Checking folder: "
	skippingFolder = "Skipping folder: "
	checkingFile   = "Checking file: "
	skippingFile   = "Skipping file: "
)

// Reporter turns walk and match events into output lines according to the
// configured verbosity. The first write error is kept and returned by Err;
// later events are dropped.
type Reporter struct {
	out       io.Writer
	style     *Style
	verbosity models.Verbosity
	mode      models.Mode
	err       error
}

// NewReporter creates a Reporter. mode decides how line matches are laid
// out: regex mode uses the numbered whole-line layout, literal mode the
// "Found on line" layout.
func NewReporter(out io.Writer, style *Style, verbosity models.Verbosity, mode models.Mode) *Reporter {
	if style == nil {
		style = NewStyle(false)
	}
	return &Reporter{out: out, style: style, verbosity: verbosity, mode: mode}
}

// Directory announces a visited directory.
func (r *Reporter) Directory(visit models.DirectoryVisit) {
	if visit.Skipped {
		if r.verbosity == models.VerbosityNormal {
			r.println(r.style.labeled(r.style.DirSkipped, skippingFolder, visit.Path))
		}
		return
	}
	r.println(r.style.labeled(r.style.DirChecked, checkingFolder, visit.Path))
}

// FileSkipped announces a file rejected by an exclusion.
func (r *Reporter) FileSkipped(path string) {
	if r.verbosity != models.VerbosityNormal {
		return
	}
	r.println(r.style.labeled(r.style.FileSkipped, skippingFile, path))
}

// FileChecked announces a searched file together with its matches.
func (r *Reporter) FileChecked(result models.FileResult) {
	matched := result.HasMatches()
	if !matched && r.verbosity == models.VerbosityQuieter {
		return
	}
	r.println(r.style.labeled(r.style.FileChecked, checkingFile, result.Path))
	if !matched {
		return
	}
	for _, line := range r.matchLines(result) {
		r.println(line)
	}
}

func (r *Reporter) matchLines(result models.FileResult) []string {
	if result.Record != nil {
		return []string{FormatRecord(result.Record)}
	}
	if r.mode == models.ModeRegex {
		return r.style.FormatWholeLines(result.Lines)
	}
	return r.style.FormatLiteral(result.Lines)
}

// Err returns the first error encountered while writing.
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) println(line string) {
	if r.err != nil || r.out == nil {
		return
	}
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		r.err = fmt.Errorf("failed to write output: %w", err)
	}
}
