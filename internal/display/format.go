package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// Highlight wraps every span of line in the highlight role. Spans must be
// sorted and non-overlapping, as the matchers produce them.
func (s *Style) Highlight(line string, spans []models.Span) string {
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		if sp.Start < prev || sp.End > len(line) || sp.Start > sp.End {
			continue
		}
		b.WriteString(line[prev:sp.Start])
		b.WriteString(s.Match.Sprint(line[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(line[prev:])
	return b.String()
}

// FormatLiteral renders one "Found on line N: ..." line per match.
func (s *Style) FormatLiteral(lines []models.LineMatch) []string {
	out := make([]string, 0, len(lines))
	for _, lm := range lines {
		out = append(out, fmt.Sprintf("Found on line %d: %s", lm.LineNumber, s.Highlight(lm.Text, lm.Spans)))
	}
	return out
}

// FormatWholeLines renders the "N line(s) found:" header followed by each
// matching line prefixed with its number.
func (s *Style) FormatWholeLines(lines []models.LineMatch) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, s.Header.Sprintf("%d line(s) found:", len(lines)))
	for _, lm := range lines {
		out = append(out, fmt.Sprintf("%d: %s", lm.LineNumber, s.Highlight(lm.Text, lm.Spans)))
	}
	return out
}

// FormatRecord renders the aggregated matches as a single line:
//
//	Matches: {"test": {"number_of_occurrences": 1, "line_numbers": [1]}}
func FormatRecord(record *models.MatchRecord) string {
	var b strings.Builder
	b.WriteString("Matches: {")
	for i, occ := range record.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(occ.Text))
		b.WriteString(`: {"number_of_occurrences": `)
		b.WriteString(strconv.Itoa(occ.Count))
		b.WriteString(`, "line_numbers": [`)
		for j, n := range occ.LineNumbers {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(n))
		}
		b.WriteString("]}")
	}
	b.WriteString("}")
	return b.String()
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
