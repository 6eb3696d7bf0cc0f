package partition

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Coverage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
	}{
		{
			name:  "multi-line input across four workers",
			input: "alpha beta\ngamma\ndelta epsilon zeta\neta\ntheta iota\n",
			n:     4,
		},
		{
			name:  "single worker",
			input: "one\ntwo\nthree\n",
			n:     1,
		},
		{
			name:  "more workers than lines",
			input: "just one line\n",
			n:     8,
		},
		{
			name:  "no trailing newline",
			input: "first\nsecond\nthird",
			n:     3,
		},
		{
			name:  "no newline at all",
			input: "a single long unterminated line of text",
			n:     4,
		},
		{
			name:  "empty input",
			input: "",
			n:     4,
		},
		{
			name:  "newlines only",
			input: "\n\n\n\n\n",
			n:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.input)
			parts := Split(buf, tt.n)

			require.Len(t, parts, tt.n)

			// Exhaustive, gap-free, non-overlapping coverage of [0, L).
			assert.Equal(t, 0, parts[0].Start)
			assert.Equal(t, len(buf), parts[tt.n-1].End)
			for i, p := range parts {
				assert.LessOrEqual(t, p.Start, p.End, "partition %d inverted", i)
				if i > 0 {
					assert.Equal(t, parts[i-1].End, p.Start,
						"partition %d does not start where %d ended", i, i-1)
				}
			}
		})
	}
}

func TestSplit_LineAlignment(t *testing.T) {
	input := []byte("line one is fairly long\nshort\nanother line here\nx\nfinal line\n")

	for _, n := range []int{1, 2, 3, 4, 8} {
		parts := Split(input, n)
		require.Len(t, parts, n)

		for i, p := range parts {
			if i == 0 {
				continue
			}
			if p.Start == 0 || p.Start == len(input) {
				continue
			}
			assert.Equal(t, byte('\n'), input[p.Start-1],
				"n=%d: partition %d starts mid-line at %d", n, i, p.Start)
		}
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	parts := Split(nil, 4)

	require.Len(t, parts, 4)
	for i, p := range parts {
		assert.Equal(t, Partition{Start: 0, End: 0}, p, "partition %d", i)
		assert.True(t, p.Empty())
	}
}

func TestSplit_BoundaryCollapse(t *testing.T) {
	// No terminator anywhere: the first boundary search runs off the end
	// of the buffer, the first partition absorbs everything, and the rest
	// are empty tail partitions.
	input := []byte(strings.Repeat("x", 100))
	parts := Split(input, 4)

	require.Len(t, parts, 4)
	assert.Equal(t, Partition{Start: 0, End: 100}, parts[0])
	for i := 1; i < 4; i++ {
		assert.True(t, parts[i].Empty(), "partition %d should be empty", i)
		assert.Equal(t, 100, parts[i].Start)
		assert.Equal(t, 100, parts[i].End)
	}
}

func TestSplit_RemainderGoesToTail(t *testing.T) {
	// 10 lines of 10 bytes each; 3 workers leaves a remainder that the
	// final partition must absorb.
	var b bytes.Buffer
	for i := 0; i < 10; i++ {
		b.WriteString("123456789\n")
	}
	input := b.Bytes()

	parts := Split(input, 3)

	require.Len(t, parts, 3)
	assert.Equal(t, len(input), parts[2].End)

	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	assert.Equal(t, len(input), total)
}

func TestSplit_InvalidWorkerCount(t *testing.T) {
	assert.Nil(t, Split([]byte("text"), 0))
	assert.Nil(t, Split([]byte("text"), -1))
}

func TestPartition_Helpers(t *testing.T) {
	p := Partition{Start: 3, End: 9}
	assert.Equal(t, 6, p.Len())
	assert.False(t, p.Empty())

	empty := Partition{Start: 5, End: 5}
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
}
