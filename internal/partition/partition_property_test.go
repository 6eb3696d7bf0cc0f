//go:build property
// +build property

package partition

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSplitProperties tests invariant properties of the partitioner across
// arbitrary inputs and worker counts.
func TestSplitProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genInput := gen.SliceOf(gen.OneGenOf(
		gen.AlphaChar(),
		gen.Const(' '),
		gen.Const('\n'),
	)).Map(func(runes []rune) string {
		return string(runes)
	})

	genWorkers := gen.IntRange(1, 16)

	// Property 1: partitions are exhaustive and non-overlapping for any
	// input and worker count.
	properties.Property("exhaustive non-overlapping coverage", prop.ForAll(
		func(input string, n int) bool {
			buf := []byte(input)
			parts := Split(buf, n)

			if len(parts) != n {
				return false
			}
			if parts[0].Start != 0 || parts[n-1].End != len(buf) {
				return false
			}

			for i := 1; i < n; i++ {
				if parts[i].Start != parts[i-1].End {
					return false
				}
				if parts[i].Start > parts[i].End {
					return false
				}
			}

			return true
		},
		genInput,
		genWorkers,
	))

	// Property 2: no interior boundary falls strictly inside a line.
	properties.Property("boundaries sit after line terminators", prop.ForAll(
		func(input string, n int) bool {
			buf := []byte(input)
			parts := Split(buf, n)

			for i := 1; i < n; i++ {
				b := parts[i].Start
				if b == 0 || b == len(buf) {
					continue
				}
				if buf[b-1] != '\n' {
					return false
				}
			}

			return true
		},
		genInput,
		genWorkers,
	))

	// Property 3: splitting never loses or duplicates content — the
	// concatenation of all partition slices reproduces the input.
	properties.Property("concatenation reproduces input", prop.ForAll(
		func(input string, n int) bool {
			buf := []byte(input)
			parts := Split(buf, n)

			var b strings.Builder
			for _, p := range parts {
				b.Write(buf[p.Start:p.End])
			}

			return b.String() == input
		},
		genInput,
		genWorkers,
	))

	properties.TestingRun(t)
}
