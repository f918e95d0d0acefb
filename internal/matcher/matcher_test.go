package matcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/findfiles/internal/models"
)

const sample = "Tämä on testi.\n"

func TestLiteralMatcher(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		content string
		want    []models.LineMatch
	}{
		{
			name:    "single match",
			query:   "test",
			content: sample,
			want: []models.LineMatch{
				{LineNumber: 1, Text: "Tämä on testi.", Spans: []models.Span{{Start: 10, End: 14}}},
			},
		},
		{
			name:    "no match",
			query:   "this is not found",
			content: sample,
		},
		{
			name:    "case sensitive",
			query:   "Test",
			content: sample,
		},
		{
			name:    "two occurrences on one line and a later line",
			query:   "ab",
			content: "xx\nab ab\nno\nzab",
			want: []models.LineMatch{
				{LineNumber: 2, Text: "ab ab", Spans: []models.Span{{Start: 0, End: 2}, {Start: 3, End: 5}}},
				{LineNumber: 4, Text: "zab", Spans: []models.Span{{Start: 1, End: 3}}},
			},
		},
		{
			name:    "occurrences do not overlap",
			query:   "aa",
			content: "aaa\n",
			want: []models.LineMatch{
				{LineNumber: 1, Text: "aaa", Spans: []models.Span{{Start: 0, End: 2}}},
			},
		},
		{
			name:    "crlf is stripped",
			query:   "end",
			content: "the end\r\n",
			want: []models.LineMatch{
				{LineNumber: 1, Text: "the end", Spans: []models.Span{{Start: 4, End: 7}}},
			},
		},
		{
			name:    "empty query never matches",
			query:   "",
			content: sample,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewLiteral(tt.query).Match(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Lines)
			assert.Nil(t, result.Record)
			assert.Equal(t, len(tt.want) > 0, result.HasMatches())
		})
	}
}

func TestRegexMatcher_Aggregates(t *testing.T) {
	content := "cat dog cat\nbird\ndog\ncat"
	m, err := NewRegex(`cat|dog`, false)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader(content))
	require.NoError(t, err)
	require.NotNil(t, result.Record)

	entries := result.Record.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.Occurrence{Text: "cat", Count: 3, LineNumbers: []int{1, 1, 4}}, entries[0])
	assert.Equal(t, models.Occurrence{Text: "dog", Count: 2, LineNumbers: []int{1, 3}}, entries[1])
	assert.Equal(t, 5, result.Occurrences())
}

func TestRegexMatcher_SumEqualsMatchCount(t *testing.T) {
	content := "a1 b22 c333\nnothing here\n4444 5\n"
	m, err := NewRegex(`\d+`, false)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader(content))
	require.NoError(t, err)

	total := 0
	for _, occ := range result.Record.Entries() {
		assert.Len(t, occ.LineNumbers, occ.Count)
		total += occ.Count
	}
	assert.Equal(t, 5, total)
}

func TestRegexMatcher_CapturingGroupIsKey(t *testing.T) {
	m, err := NewRegex(`id=(\w+)`, false)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader("id=alpha id=beta\nid=alpha\n"))
	require.NoError(t, err)

	occ, ok := result.Record.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 2, occ.Count)
	assert.Equal(t, []int{1, 2}, occ.LineNumbers)

	_, ok = result.Record.Get("id=alpha")
	assert.False(t, ok)
}

func TestRegexMatcher_NoMatch(t *testing.T) {
	m, err := NewRegex(`this does not match`, false)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader(sample))
	require.NoError(t, err)
	assert.False(t, result.HasMatches())
	assert.Zero(t, result.Occurrences())
}

func TestRegexMatcher_WholeLine(t *testing.T) {
	m, err := NewRegex(`t\w`, true)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader("tea time\nnone\nat"))
	require.NoError(t, err)
	assert.Nil(t, result.Record)
	assert.Equal(t, []models.LineMatch{
		{LineNumber: 1, Text: "tea time", Spans: []models.Span{{Start: 0, End: 2}, {Start: 4, End: 6}}},
	}, result.Lines)
	assert.Equal(t, 2, result.Occurrences())
}

func TestRegexMatcher_MatchesDoNotSpanLines(t *testing.T) {
	m, err := NewRegex(`a\nb`, true)
	require.NoError(t, err)

	result, err := m.Match(strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	assert.False(t, result.HasMatches())
}

func TestNewRegex_InvalidPattern(t *testing.T) {
	_, err := NewRegex(`(unclosed`, false)
	require.Error(t, err)

	var patternErr *PatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Equal(t, "(unclosed", patternErr.Pattern)
	assert.Contains(t, err.Error(), "invalid regular expression")
}

func TestNew(t *testing.T) {
	m, err := New(models.ModeLiteral, "x", true)
	require.NoError(t, err)
	assert.IsType(t, &LiteralMatcher{}, m)

	m, err = New(models.ModeRegex, "x", false)
	require.NoError(t, err)
	assert.IsType(t, &RegexMatcher{}, m)

	_, err = New(models.ModeRegex, "[", false)
	assert.Error(t, err)

	_, err = New(models.Mode(42), "x", false)
	assert.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestMatch_ReadError(t *testing.T) {
	_, err := NewLiteral("x").Match(errReader{})
	assert.EqualError(t, err, "disk on fire")
}
