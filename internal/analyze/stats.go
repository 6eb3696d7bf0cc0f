// Package analyze implements the partitioned concurrent text-aggregation
// engine.
//
// An Engine splits the input buffer into line-aligned partitions, scans each
// partition on its own worker goroutine, and merges the per-worker tallies
// into a single mutex-guarded aggregate. The coordinator blocks on a join
// barrier before reading the final totals, so the result is deterministic
// for any worker count and any scheduling order.
package analyze

import (
	"bytes"
	"strings"
)

// Stats holds the four counters produced by scanning a stretch of text.
//
// Chars uses a uniform accounting rule: every line contributes its length
// plus one for the terminator, including a final line that had no trailing
// newline. This matches the single-pass reference scan, not a precise byte
// count.
type Stats struct {
	Chars           int64 `json:"chars" yaml:"chars"`
	Lines           int64 `json:"lines" yaml:"lines"`
	Words           int64 `json:"words" yaml:"words"`
	TermOccurrences int64 `json:"term_occurrences" yaml:"term_occurrences"`
}

// Add accumulates other into s field by field.
func (s *Stats) Add(other Stats) {
	s.Chars += other.Chars
	s.Lines += other.Lines
	s.Words += other.Words
	s.TermOccurrences += other.TermOccurrences
}

// scanText tallies one stretch of text. Lines are delimited by '\n'; an
// unterminated trailing segment still counts as a line when it is non-empty.
// Words are whitespace-delimited tokens. Term matching is case-sensitive
// substring containment within a token, not whole-token equality, so the
// token "threading" matches the term "thread".
func scanText(buf []byte, term string) Stats {
	var s Stats

	for len(buf) > 0 {
		var line []byte
		if idx := bytes.IndexByte(buf, '\n'); idx >= 0 {
			line = buf[:idx]
			buf = buf[idx+1:]
		} else {
			line = buf
			buf = nil
		}

		s.Lines++
		s.Chars += int64(len(line)) + 1

		for _, token := range strings.Fields(string(line)) {
			s.Words++
			if strings.Contains(token, term) {
				s.TermOccurrences++
			}
		}
	}

	return s
}