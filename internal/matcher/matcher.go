// Package matcher finds query matches in file content, one physical line at
// a time. A match never spans a line break.
package matcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// Matcher scans a file's content and reports its matches.
type Matcher interface {
	Match(r io.Reader) (models.FileResult, error)
}

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// New returns the matcher for mode. Regex patterns are compiled here, once
// per run, so an invalid pattern fails before any file is read.
func New(mode models.Mode, query string, wholeLine bool) (Matcher, error) {
	switch mode {
	case models.ModeLiteral:
		return NewLiteral(query), nil
	case models.ModeRegex:
		return NewRegex(query, wholeLine)
	default:
		return nil, fmt.Errorf("unknown search mode %v", mode)
	}
}

// forEachLine calls fn with each line of r, without its terminator, and its
// 1-based number. A trailing "\r" is removed along with the "\n".
func forEachLine(r io.Reader, fn func(n int, line string)) error {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fn(n, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// LiteralMatcher finds an exact, case-sensitive substring.
type LiteralMatcher struct {
	query string
}

// NewLiteral returns a matcher for query.
func NewLiteral(query string) *LiteralMatcher {
	return &LiteralMatcher{query: query}
}

// Match implements Matcher. Every line holding the query is returned with
// the spans of all non-overlapping occurrences.
func (m *LiteralMatcher) Match(r io.Reader) (models.FileResult, error) {
	var result models.FileResult
	err := forEachLine(r, func(n int, line string) {
		spans := m.spans(line)
		if len(spans) == 0 {
			return
		}
		result.Lines = append(result.Lines, models.LineMatch{LineNumber: n, Text: line, Spans: spans})
	})
	return result, err
}

func (m *LiteralMatcher) spans(line string) []models.Span {
	if m.query == "" {
		return nil
	}
	var spans []models.Span
	offset := 0
	for {
		i := strings.Index(line[offset:], m.query)
		if i < 0 {
			return spans
		}
		start := offset + i
		end := start + len(m.query)
		spans = append(spans, models.Span{Start: start, End: end})
		offset = end
	}
}

// RegexMatcher matches a compiled regular expression.
type RegexMatcher struct {
	re        *regexp.Regexp
	wholeLine bool
}

// NewRegex compiles pattern. With wholeLine the matcher returns matching
// lines; otherwise it aggregates matches by matched text.
func NewRegex(pattern string, wholeLine bool) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &RegexMatcher{re: re, wholeLine: wholeLine}, nil
}

// Match implements Matcher.
func (m *RegexMatcher) Match(r io.Reader) (models.FileResult, error) {
	if m.wholeLine {
		return m.matchLines(r)
	}
	return m.matchRecord(r)
}

func (m *RegexMatcher) matchLines(r io.Reader) (models.FileResult, error) {
	var result models.FileResult
	err := forEachLine(r, func(n int, line string) {
		locs := m.re.FindAllStringIndex(line, -1)
		if len(locs) == 0 {
			return
		}
		spans := make([]models.Span, 0, len(locs))
		for _, loc := range locs {
			spans = append(spans, models.Span{Start: loc[0], End: loc[1]})
		}
		result.Lines = append(result.Lines, models.LineMatch{LineNumber: n, Text: line, Spans: spans})
	})
	return result, err
}

// matchRecord keys each match by its text. When the pattern has capturing
// groups the first group's text is the key.
func (m *RegexMatcher) matchRecord(r io.Reader) (models.FileResult, error) {
	record := models.NewMatchRecord()
	grouped := m.re.NumSubexp() > 0
	err := forEachLine(r, func(n int, line string) {
		for _, loc := range m.re.FindAllStringSubmatchIndex(line, -1) {
			start, end := loc[0], loc[1]
			if grouped {
				start, end = loc[2], loc[3]
			}
			text := ""
			if start >= 0 {
				text = line[start:end]
			}
			record.Add(text, n)
		}
	})
	return models.FileResult{Record: record}, err
}
