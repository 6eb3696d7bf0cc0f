// Package partition splits an in-memory text buffer into line-aligned byte
// ranges for parallel scanning.
//
// A buffer of length L divided across n workers yields exactly n half-open
// ranges [Start, End) that cover [0, L) with no gaps or overlaps. Every
// interior boundary sits immediately after a line terminator, so no range
// begins or ends in the middle of a line. Ranges may be empty; an empty
// range simply contributes nothing to the scan.
package partition

import "bytes"

// Partition is a half-open byte range [Start, End) into the input buffer.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the partition.
func (p Partition) Len() int {
	return p.End - p.Start
}

// Empty reports whether the partition covers no bytes.
func (p Partition) Empty() bool {
	return p.Start >= p.End
}

// Split divides buf into exactly n line-aligned partitions.
//
// The naive stride is len(buf)/n. Each interior boundary is advanced to just
// past the next newline so lines are never split across partitions; the
// adjusted end of partition i is the start of partition i+1. When no newline
// remains before the end of the buffer, the boundary collapses to len(buf)
// and every later partition is empty. n must be >= 1; callers validate
// worker counts before partitioning.
func Split(buf []byte, n int) []Partition {
	if n < 1 {
		return nil
	}

	length := len(buf)
	stride := length / n
	parts := make([]Partition, n)

	start := 0
	for i := 0; i < n; i++ {
		end := length
		if i < n-1 {
			end = (i + 1) * stride
			if end < start {
				end = start
			}
			end = alignToLine(buf, end)
		}
		parts[i] = Partition{Start: start, End: end}
		start = end
	}

	return parts
}

// alignToLine moves pos forward to the first offset that immediately
// follows a line terminator. A pos already on a line boundary (or at the
// end of the buffer) is returned unchanged; if no terminator remains the
// boundary collapses to len(buf).
func alignToLine(buf []byte, pos int) int {
	if pos >= len(buf) {
		return len(buf)
	}
	if pos > 0 && buf[pos-1] == '\n' {
		return pos
	}
	if idx := bytes.IndexByte(buf[pos:], '\n'); idx >= 0 {
		return pos + idx + 1
	}
	return len(buf)
}
