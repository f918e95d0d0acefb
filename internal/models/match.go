package models

// Span is a half-open [Start, End) byte range within a single line.
type Span struct {
	Start int
	End   int
}

// LineMatch is one line that contains at least one match.
type LineMatch struct {
	LineNumber int // 1-based
	Text       string
	Spans      []Span
}

// Occurrence accumulates every match of one distinct matched text.
type Occurrence struct {
	Text  string
	Count int
	// LineNumbers has one entry per occurrence, so a line matched twice
	// appears twice.
	LineNumbers []int
}

// MatchRecord groups regex matches by matched text. Entries keep the order
// in which each distinct text was first seen.
type MatchRecord struct {
	entries []*Occurrence
	index   map[string]*Occurrence
}

// NewMatchRecord returns an empty MatchRecord.
func NewMatchRecord() *MatchRecord {
	return &MatchRecord{index: make(map[string]*Occurrence)}
}

// Add records one occurrence of text on the given line.
func (r *MatchRecord) Add(text string, lineNumber int) {
	if r.index == nil {
		r.index = make(map[string]*Occurrence)
	}
	occ, ok := r.index[text]
	if !ok {
		occ = &Occurrence{Text: text}
		r.index[text] = occ
		r.entries = append(r.entries, occ)
	}
	occ.Count++
	occ.LineNumbers = append(occ.LineNumbers, lineNumber)
}

// Get returns the occurrence for text, if any.
func (r *MatchRecord) Get(text string) (Occurrence, bool) {
	if r == nil || r.index == nil {
		return Occurrence{}, false
	}
	occ, ok := r.index[text]
	if !ok {
		return Occurrence{}, false
	}
	return *occ, true
}

// Entries returns the occurrences in first-seen order.
func (r *MatchRecord) Entries() []Occurrence {
	if r == nil {
		return nil
	}
	out := make([]Occurrence, 0, len(r.entries))
	for _, occ := range r.entries {
		out = append(out, *occ)
	}
	return out
}

// Len returns the number of distinct matched texts.
func (r *MatchRecord) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Total returns the sum of all occurrence counts.
func (r *MatchRecord) Total() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, occ := range r.entries {
		total += occ.Count
	}
	return total
}

// FileResult is the complete outcome of matching one file. Exactly one of
// Lines or Record is populated, depending on the matcher that produced it.
type FileResult struct {
	Path   string
	Lines  []LineMatch
	Record *MatchRecord
}

// HasMatches reports whether the file produced any match.
func (r FileResult) HasMatches() bool {
	return len(r.Lines) > 0 || r.Record.Len() > 0
}

// Occurrences returns the total number of match occurrences in the file.
func (r FileResult) Occurrences() int {
	if r.Record != nil {
		return r.Record.Total()
	}
	n := 0
	for _, lm := range r.Lines {
		n += len(lm.Spans)
	}
	return n
}
